package textio

import (
	"bytes"
	"io"
	"testing"
)

var benchPayload = bytes.Repeat([]byte("the quick brown fox jumps over the lazy dog 0123456789 "), 1024)

func BenchmarkReader_Read_UTF8(b *testing.B) {
	b.SetBytes(int64(len(benchPayload)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := FromBytes(benchPayload)
		if _, err := io.Copy(io.Discard, r); err != nil {
			b.Fatal(err)
		}
		if err := r.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReader_Read_Latin1(b *testing.B) {
	b.SetBytes(int64(len(benchPayload)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := FromBytes(benchPayload, WithCharset("ISO-8859-1"))
		if _, err := io.Copy(io.Discard, r); err != nil {
			b.Fatal(err)
		}
		if err := r.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkReader_ReadRunes(b *testing.B) {
	buf := make([]rune, 4096)
	b.SetBytes(int64(len(benchPayload)))
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		r := FromBytes(benchPayload)
		for {
			_, err := r.ReadRunes(buf)
			if err == io.EOF {
				break
			}
			if err != nil {
				b.Fatal(err)
			}
		}
		if err := r.Close(); err != nil {
			b.Fatal(err)
		}
	}
}

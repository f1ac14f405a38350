// Package charset resolves charset names to decoders and builds the
// transformers used by the textio reader.
//
// Resolution consults the IANA index first and falls back to WHATWG
// labels, so both canonical names ("ISO-8859-1") and loose web labels
// ("latin1") work. Unknown names fail with UNSUPPORTED_CHARSET.
//
// # Usage
//
//	enc, err := charset.Resolve("Shift_JIS")
//	if err != nil {
//	    return err
//	}
//	t := charset.DecodeTransformer(enc, charset.PolicyReplace)
package charset

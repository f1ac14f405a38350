package middleware

import (
	"encoding/json"
	"mime"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/charkit/charkit/charset"
	apperrors "github.com/charkit/charkit/errors"
	"github.com/charkit/charkit/textio"
)

// CharsetDecoding returns middleware that transcodes request bodies to
// UTF-8 according to the Content-Type charset parameter, falling back
// to the configured default. The body is replaced with a deferred
// reader, so a handler that never reads the body pays no decode cost.
// Bodies already declaring UTF-8 still pass through the decoder, so
// handlers never see malformed sequences. Requests declaring a charset
// the registry cannot resolve are rejected with 415 before the handler
// runs. Binary media types pass through untouched.
func CharsetDecoding(cfg *Config) Middleware {
	defaults := decodingDefaults(cfg)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			name, mediaType, params := requestCharset(r, defaults.DefaultCharset)
			if name == "" {
				next.ServeHTTP(w, r)
				return
			}
			if _, err := charset.Resolve(name); err != nil {
				writeError(w, apperrors.UnsupportedCharset(name))
				return
			}

			decodeBody(r, name, mediaType, params, defaults.BOMOverride)
			next.ServeHTTP(w, r)
		})
	}
}

// GinCharsetDecoding returns a Gin-native middleware for request body
// transcoding. Unlike GinWrap(CharsetDecoding(cfg)), a rejected
// request aborts the Gin chain.
func GinCharsetDecoding(cfg *Config) gin.HandlerFunc {
	defaults := decodingDefaults(cfg)
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Body == http.NoBody {
			c.Next()
			return
		}

		name, mediaType, params := requestCharset(c.Request, defaults.DefaultCharset)
		if name == "" {
			c.Next()
			return
		}
		if _, err := charset.Resolve(name); err != nil {
			appErr := apperrors.UnsupportedCharset(name)
			c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToResponse())
			return
		}

		decodeBody(c.Request, name, mediaType, params, defaults.BOMOverride)
		c.Next()
	}
}

func decodingDefaults(cfg *Config) Config {
	var defaults Config
	if cfg != nil {
		defaults = *cfg
	}
	defaults.ApplyDefaults()
	return defaults
}

// decodeBody swaps the request body for a deferred decoding reader and
// rewrites the Content-Type charset to utf-8 so downstream consumers
// see what they will actually read.
func decodeBody(r *http.Request, name, mediaType string, params map[string]string, bom bool) {
	opts := []textio.Option{textio.WithCharset(name)}
	if bom {
		opts = append(opts, textio.WithBOMOverride())
	}
	r.Body = textio.FromReader(r.Body, opts...)

	if mediaType != "" {
		params["charset"] = "utf-8"
		r.Header.Set("Content-Type", mime.FormatMediaType(mediaType, params))
	}
}

// requestCharset extracts the declared charset from the Content-Type
// header, falling back to def for textual media types. It returns an
// empty name for binary media types so their bodies pass through.
func requestCharset(r *http.Request, def string) (string, string, map[string]string) {
	ct := r.Header.Get("Content-Type")
	if ct == "" {
		return def, "", nil
	}
	mediaType, params, err := mime.ParseMediaType(ct)
	if err != nil {
		return def, "", nil
	}
	if cs := params["charset"]; cs != "" {
		return cs, mediaType, params
	}
	if !isTextMediaType(mediaType) {
		return "", "", nil
	}
	return def, mediaType, params
}

// isTextMediaType reports whether a media type's body is textual when
// no charset parameter says so.
func isTextMediaType(mediaType string) bool {
	if strings.HasPrefix(mediaType, "text/") {
		return true
	}
	switch mediaType {
	case "application/json", "application/xml", "application/x-www-form-urlencoded":
		return true
	}
	return strings.HasSuffix(mediaType, "+json") || strings.HasSuffix(mediaType, "+xml")
}

// writeError writes the standard JSON error envelope.
func writeError(w http.ResponseWriter, appErr *apperrors.AppError) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(appErr.HTTPStatus)
	_ = json.NewEncoder(w).Encode(appErr.ToResponse())
}

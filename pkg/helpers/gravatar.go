package helpers

import (
	"crypto/md5"
	"encoding/hex"
	"net/url"
	"strconv"
	"strings"
)

const gravatarBase = "https://www.gravatar.com/avatar/"

// AvatarOptions mirrors the Gravatar query parameters s, r and d.
type AvatarOptions struct {
	Size    int
	Rating  string
	Default string
}

// DefaultAvatarOptions is 200px, general audience, mystery-person fallback.
func DefaultAvatarOptions() AvatarOptions {
	return AvatarOptions{Size: 200, Rating: "g", Default: "mm"}
}

// GravatarURL builds the avatar URL for email. It performs no I/O and the
// same email always yields the same URL.
func GravatarURL(email string, opts AvatarOptions) string {
	sum := md5.Sum([]byte(strings.ToLower(strings.TrimSpace(email))))

	// Fixed s, r, d order keeps the output byte-stable; url.Values would sort keys.
	var b strings.Builder
	b.WriteString(gravatarBase)
	b.WriteString(hex.EncodeToString(sum[:]))
	sep := "?"
	add := func(k, v string) {
		if v == "" {
			return
		}
		b.WriteString(sep)
		b.WriteString(k)
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(v))
		sep = "&"
	}
	if opts.Size > 0 {
		add("s", strconv.Itoa(opts.Size))
	}
	add("r", opts.Rating)
	add("d", opts.Default)
	return b.String()
}

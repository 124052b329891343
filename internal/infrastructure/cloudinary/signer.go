package cloudinary

import (
	"crypto/sha1"
	"fmt"
	"sort"
	"strings"
	"time"
)

// Signer issues short-lived upload signatures so browsers can upload images
// straight to the CDN without the API secret ever leaving the server.
type Signer struct {
	apiSecret string
}

func NewSigner(apiSecret string) *Signer {
	return &Signer{
		apiSecret: apiSecret,
	}
}

// Sign stamps the params with the current Unix time and signs them.
func (s *Signer) Sign(params map[string]string) (signature string, timestamp int64) {
	timestamp = time.Now().Unix()
	return s.SignAt(params, timestamp), timestamp
}

// SignAt computes the signature for a fixed timestamp: the params (with
// timestamp included) are serialized as k=v pairs joined by "&" in key order,
// the API secret is appended, and the result is SHA-1 hashed to hex.
func (s *Signer) SignAt(params map[string]string, timestamp int64) string {
	merged := make(map[string]string, len(params)+1)
	for k, v := range params {
		merged[k] = v
	}
	merged["timestamp"] = fmt.Sprintf("%d", timestamp)

	keys := make([]string, 0, len(merged))
	for k := range merged {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+merged[k])
	}

	toSign := strings.Join(pairs, "&") + s.apiSecret
	return fmt.Sprintf("%x", sha1.Sum([]byte(toSign)))
}

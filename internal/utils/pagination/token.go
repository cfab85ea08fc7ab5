package pagination

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"
)

// EncodeToken creates an opaque continuation token for a listing of kind,
// pointing just past the item with sequence number seq.
func EncodeToken(kind string, seq int64) string {
	tokenStr := fmt.Sprintf("%s|%d", kind, seq)
	return base64.URLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeToken parses a token produced by EncodeToken. The token must belong to
// the same kind of listing.
func DecodeToken(token string, kind string) (int64, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid pagination token format (split)")
	}
	if parts[0] != kind {
		return 0, fmt.Errorf("invalid pagination token format (token is for %q, not %q)", parts[0], kind)
	}
	seq, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid pagination token format (sequence parse): %w", err)
	}
	return seq, nil
}

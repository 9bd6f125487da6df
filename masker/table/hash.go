package table

import (
	"fmt"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint returns a stable 64-bit digest of the source text, recorded in
// the table header and checked after a restore.
func Fingerprint(data []byte) (string, error) {
	hash, err := highwayhash.New64(key)
	if err != nil {
		return "", err
	}
	if _, err = hash.Write(data); err != nil {
		return "", err
	}
	return fmt.Sprintf("%016x", hash.Sum64()), nil
}

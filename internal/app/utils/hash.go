package utils

import (
	"encoding/hex"

	"github.com/shopspring/decimal"
	"lukechampine.com/blake3"
)

const bytesPerMB = 1024 * 1024

// Digest returns the hex BLAKE3-256 digest of data.
func Digest(data []byte) string {
	sum := blake3.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// SizeMB converts a byte count to mebibytes.
func SizeMB(size int64) decimal.Decimal {
	return decimal.NewFromInt(size).Div(decimal.NewFromInt(bytesPerMB))
}

// MBToBytes converts a whole number of mebibytes to bytes.
func MBToBytes(mb int) int64 {
	return int64(mb) * bytesPerMB
}

package identity

import (
	"crypto/md5"
	"encoding/binary"
)

// guidAlphabet is the character set for encoded GUIDs: alphanumeric only,
// matching the restricted set Anki accepts in note GUIDs.
const guidAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

// hashToID converts a namespace string to a stable non-negative 64-bit ID.
//
// MD5 is used for determinism and speed, not security. The first 8 bytes of
// the digest are read big-endian and the sign bit is cleared so the value
// stays positive when Anki stores it as a signed 64-bit integer.
func hashToID(namespace string) int64 {
	sum := md5.Sum([]byte(namespace))
	return int64(binary.BigEndian.Uint64(sum[:8]) &^ (1 << 63))
}

// tokenFromDigest encodes raw digest bytes as a base-62 string over
// guidAlphabet. It accepts bytes rather than a string so callers can feed
// the leading slice of whichever digest they use without the numeric-ID and
// token-ID derivations correlating.
func tokenFromDigest(digest []byte) string {
	const base = uint64(len(guidAlphabet))

	num := binary.BigEndian.Uint64(digest[:8])
	if num == 0 {
		return guidAlphabet[:1]
	}

	buf := make([]byte, 0, 11)
	for num > 0 {
		buf = append(buf, guidAlphabet[num%base])
		num /= base
	}
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
	return string(buf)
}

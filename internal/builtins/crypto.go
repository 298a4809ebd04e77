package builtins

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"

	"github.com/kaynat-lang/kaynat/internal/interp"
)

// cryptoTools is grounded on
// original_source/kaynat/stdlib/crypto_tools.py. Standard-library only
// (crypto/md5, crypto/sha1, crypto/sha256, encoding/base64) — see
// DESIGN.md for why no pack dependency is a better fit for plain digest
// and encoding built-ins.
func cryptoTools() []registration {
	return []registration{
		{"md5_hash", biMD5Hash},
		{"sha1_hash", biSHA1Hash},
		{"sha256_hash", biSHA256Hash},
		{"base64_encode", biBase64Encode},
		{"base64_decode", biBase64Decode},
	}
}

func biMD5Hash(args []interp.Value) (interp.Value, error) {
	s, err := strArg("md5_hash", args, 0)
	if err != nil {
		return nil, err
	}
	sum := md5.Sum([]byte(s))
	return strVal(hex.EncodeToString(sum[:])), nil
}

func biSHA1Hash(args []interp.Value) (interp.Value, error) {
	s, err := strArg("sha1_hash", args, 0)
	if err != nil {
		return nil, err
	}
	sum := sha1.Sum([]byte(s))
	return strVal(hex.EncodeToString(sum[:])), nil
}

func biSHA256Hash(args []interp.Value) (interp.Value, error) {
	s, err := strArg("sha256_hash", args, 0)
	if err != nil {
		return nil, err
	}
	sum := sha256.Sum256([]byte(s))
	return strVal(hex.EncodeToString(sum[:])), nil
}

func biBase64Encode(args []interp.Value) (interp.Value, error) {
	s, err := strArg("base64_encode", args, 0)
	if err != nil {
		return nil, err
	}
	return strVal(base64.StdEncoding.EncodeToString([]byte(s))), nil
}

func biBase64Decode(args []interp.Value) (interp.Value, error) {
	s, err := strArg("base64_decode", args, 0)
	if err != nil {
		return nil, err
	}
	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}
	return strVal(string(decoded)), nil
}

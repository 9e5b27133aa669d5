package archive

import "encoding/base64"

// encodeBinary encodes a binary payload (shader bytecode, specialization
// data) for embedding in a JSON string field, with standard '=' padding
// per §4.6.
func encodeBinary(data []byte) string {
	if len(data) == 0 {
		return ""
	}
	return base64.StdEncoding.EncodeToString(data)
}

// decodeBinary decodes a base64 payload back to raw bytes.
func decodeBinary(s string) ([]byte, error) {
	if s == "" {
		return nil, nil
	}
	return base64.StdEncoding.DecodeString(s)
}

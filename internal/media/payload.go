package media

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// DecodePayload decodes a client-supplied image payload into raw bytes and a
// content type. Payloads arrive either as a data URI
// ("data:image/png;base64,....") or as bare base64, in which case the
// content type is left for the storage to default.
func DecodePayload(payload string) ([]byte, string, error) {
	contentType := ""
	encoded := payload

	if strings.HasPrefix(payload, "data:") {
		parts := strings.SplitN(payload, ",", 2)
		if len(parts) != 2 {
			return nil, "", fmt.Errorf("malformed data URI")
		}
		meta := strings.TrimPrefix(parts[0], "data:")
		contentType = strings.TrimSuffix(strings.SplitN(meta, ";", 2)[0], ";")
		encoded = parts[1]
	}

	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return nil, "", fmt.Errorf("invalid base64 image payload: %w", err)
	}
	return data, contentType, nil
}

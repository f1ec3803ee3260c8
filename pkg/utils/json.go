package utils

import (
	"bytes"
	stdjson "encoding/json"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// PrettyJson serializa o valor (ou reindenta bytes JSON) com indentação de tab
func PrettyJson(in any) (string, error) {
	buffer, ok := in.([]byte)
	if !ok {
		var err error
		buffer, err = json.Marshal(in)
		if err != nil {
			return "", err
		}
	}

	var out bytes.Buffer
	if err := stdjson.Indent(&out, buffer, "", "\t"); err != nil {
		return "", err
	}

	return out.String(), nil
}

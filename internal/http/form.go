package http

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"sort"
	"strconv"
	"time"
)

// FlattenForm turns a payload into multipart field names and values. Nested
// objects use "parent.child" names and list elements use "parent[i]". Nil
// values are skipped.
func FlattenForm(payload map[string]interface{}) map[string]string {
	fields := make(map[string]string, len(payload))
	for key, value := range payload {
		flatten(fields, key, value)
	}

	return fields
}

func flatten(fields map[string]string, name string, value interface{}) {
	switch typed := value.(type) {
	case nil:
	case string:
		fields[name] = typed
	case bool:
		fields[name] = strconv.FormatBool(typed)
	case int:
		fields[name] = strconv.Itoa(typed)
	case int64:
		fields[name] = strconv.FormatInt(typed, 10)
	case float64:
		fields[name] = strconv.FormatFloat(typed, 'f', -1, 64)
	case time.Time:
		fields[name] = typed.Format(time.RFC3339)
	case map[string]interface{}:
		for key, nested := range typed {
			flatten(fields, name+"."+key, nested)
		}
	case []interface{}:
		for i, element := range typed {
			flatten(fields, fmt.Sprintf("%s[%d]", name, i), element)
		}
	default:
		fields[name] = fmt.Sprint(typed)
	}
}

// encodeMultipart writes the flattened payload as multipart/form-data and
// returns the body together with its Content-Type.
func encodeMultipart(payload map[string]interface{}) ([]byte, string, error) {
	fields := FlattenForm(payload)

	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}

	sort.Strings(names)

	var buf bytes.Buffer

	writer := multipart.NewWriter(&buf)
	for _, name := range names {
		err := writer.WriteField(name, fields[name])
		if err != nil {
			return nil, "", fmt.Errorf("failed to write form field %s: %w", name, err)
		}
	}

	err := writer.Close()
	if err != nil {
		return nil, "", fmt.Errorf("failed to close multipart body: %w", err)
	}

	return buf.Bytes(), writer.FormDataContentType(), nil
}

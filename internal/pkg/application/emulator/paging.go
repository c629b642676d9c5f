package emulator

import (
	"encoding/base64"
	"fmt"
	"strconv"
)

const defaultPageSize int32 = 10

// paginate returns the page of items that starts at the offset encoded in
// token, along with the token of the next page if there is one
func paginate[T any](items []T, token *string, maxResults *int32) ([]T, *string, error) {
	offset := 0

	if token != nil && *token != "" {
		raw, err := base64.RawURLEncoding.DecodeString(*token)
		if err == nil {
			offset, err = strconv.Atoi(string(raw))
		}
		if err != nil || offset < 0 || offset > len(items) {
			return nil, nil, validationError(fmt.Sprintf("invalid pagination token %q", *token))
		}
	}

	size := int(defaultPageSize)
	if maxResults != nil {
		size = int(*maxResults)
	}

	end := min(offset+size, len(items))
	page := append(make([]T, 0, end-offset), items[offset:end]...)

	if end == len(items) {
		return page, nil, nil
	}

	next := base64.RawURLEncoding.EncodeToString([]byte(strconv.Itoa(end)))
	return page, &next, nil
}

package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// FlexInt принимает целое число как JSON-число или как числовую строку.
// Веб-клиент отправляет значения <select> строками ("1"), API-клиенты — числами.
// null и отсутствующее поле дают 0.
type FlexInt int

// UnmarshalJSON реализует json.Unmarshaler
func (f *FlexInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*f = 0
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*f = 0
			return nil
		}
		n, err := strconv.Atoi(s)
		if err != nil {
			return fmt.Errorf("invalid integer %q", s)
		}
		*f = FlexInt(n)
		return nil
	}

	var n int
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("invalid integer %s", data)
	}
	*f = FlexInt(n)
	return nil
}

// Uint возвращает значение как идентификатор; ok=false для отрицательных чисел
func (f FlexInt) Uint() (uint, bool) {
	if f < 0 {
		return 0, false
	}
	return uint(f), true
}

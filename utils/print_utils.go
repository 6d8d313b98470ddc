package utils

import (
	"fmt"
	"io"
)

func FprintLines(w io.Writer, s ...string) error {
	for _, str := range s {
		if _, err := fmt.Fprintln(w, str); err != nil {
			return err
		}
	}
	return nil
}

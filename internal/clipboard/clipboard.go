// clipboard копирует текст сводки в буфер обмена.
//
// Сначала пробуется системный буфер, затем escape-последовательность OSC 52
// в терминал. Если не сработало ни то ни другое, копирование тихо пропускается.
package clipboard

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"github.com/atotto/clipboard"
)

// ErrUnsupported — системный буфер обмена недоступен на этой машине.
var ErrUnsupported = errors.New("clipboard unsupported")

// Writer — один способ положить текст в буфер обмена.
type Writer interface {
	WriteText(text string) error
}

// WriterFunc — адаптер функции к Writer.
type WriterFunc func(text string) error

func (f WriterFunc) WriteText(text string) error { return f(text) }

// System — системный буфер обмена (pbcopy, xclip/xsel, wl-copy, Windows API).
type System struct{}

func (System) WriteText(text string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}

	return clipboard.WriteAll(text)
}

// OSC52 пишет текст в терминал последовательностью ESC ] 52 ; c ; <base64> BEL.
// Поддерживается большинством современных эмуляторов терминала, в том числе по SSH.
type OSC52 struct {
	Out io.Writer
}

func (o OSC52) WriteText(text string) error {
	if o.Out == nil {
		return fmt.Errorf("clipboard/osc52: nil writer")
	}

	_, err := fmt.Fprintf(o.Out, "\x1b]52;c;%s\a", base64.StdEncoding.EncodeToString([]byte(text)))
	return err
}

// Copy пробует writers по порядку и возвращает true на первом успехе.
// false означает, что ни один способ не сработал; ошибка наружу не отдаётся.
func Copy(text string, writers ...Writer) bool {
	for _, w := range writers {
		if w == nil {
			continue
		}

		if err := w.WriteText(text); err == nil {
			return true
		}
	}

	return false
}

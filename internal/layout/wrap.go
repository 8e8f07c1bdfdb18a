package layout

import "strings"

// MeasureFunc возвращает ширину строки в единицах страницы.
type MeasureFunc func(s string) float64

// Wrap жадно переносит text по словам в пределах maxWidth.
//
// Особенности:
//   - слова разделяются любыми пробельными символами;
//   - строка сбрасывается, только если кандидат шире maxWidth и в строке
//     уже есть хотя бы одно слово;
//   - слово шире maxWidth не разрывается и занимает отдельную строку;
//   - пустой (или пробельный) текст даёт ноль строк.
func Wrap(text string, maxWidth float64, measure MeasureFunc) []string {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var lines []string
	line := words[0]

	for _, w := range words[1:] {
		candidate := line + " " + w
		if measure(candidate) > maxWidth {
			lines = append(lines, line)
			line = w
			continue
		}
		line = candidate
	}

	return append(lines, line)
}

// WrapAt — Wrap плюс новая вертикальная позиция курсора:
// startY + len(lines)*lineHeight.
func WrapAt(text string, maxWidth, startY, lineHeight float64, measure MeasureFunc) ([]string, float64) {
	lines := Wrap(text, maxWidth, measure)
	return lines, startY + float64(len(lines))*lineHeight
}

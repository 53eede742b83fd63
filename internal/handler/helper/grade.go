package helper

import "math"

// Percentage возвращает процент правильных ответов, округленный
// до ближайшего целого. При нуле вопросов возвращает ноль.
func Percentage(score, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.Round(float64(score) / float64(total) * 100))
}

// Grade возвращает буквенную оценку по проценту правильных ответов
func Grade(percentage int) string {
	switch {
	case percentage >= 90:
		return "A+"
	case percentage >= 80:
		return "A"
	case percentage >= 70:
		return "B"
	case percentage >= 60:
		return "C"
	default:
		return "D"
	}
}

package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestQuestion_IsCorrect_CorrectAnswer(t *testing.T) {
	// Arrange
	question := &Question{
		ID:            1,
		AssessmentID:  1,
		Text:          "Choose the word that is most similar in meaning to 'ABUNDANT':",
		Option1:       "Scarce",
		Option2:       "Plentiful",
		Option3:       "Limited",
		Option4:       "Rare",
		CorrectOption: 2,
		Position:      1,
	}

	// Act & Assert
	assert.True(t, question.IsCorrect(2), "IsCorrect должен вернуть true для правильного варианта")
}

func TestQuestion_IsCorrect_IncorrectAnswer(t *testing.T) {
	// Arrange
	question := &Question{
		ID:            1,
		CorrectOption: 3,
	}

	// Act & Assert
	assert.False(t, question.IsCorrect(1), "IsCorrect должен вернуть false для неправильного варианта")
	assert.False(t, question.IsCorrect(2), "IsCorrect должен вернуть false для неправильного варианта")
	assert.False(t, question.IsCorrect(4), "IsCorrect должен вернуть false для неправильного варианта")
}

func TestQuestion_IsValidOption(t *testing.T) {
	// Arrange
	question := &Question{}

	// Act & Assert: валидные варианты 1-4
	assert.True(t, question.IsValidOption(1), "Вариант 1 должен быть валидным")
	assert.True(t, question.IsValidOption(4), "Вариант 4 должен быть валидным")

	// Assert: невалидные варианты
	assert.False(t, question.IsValidOption(0), "Вариант 0 должен быть невалидным")
	assert.False(t, question.IsValidOption(5), "Вариант 5 должен быть невалидным")
	assert.False(t, question.IsValidOption(-1), "Отрицательный вариант должен быть невалидным")
}

func TestQuestion_Options(t *testing.T) {
	// Arrange
	question := &Question{
		Option1: "A",
		Option2: "B",
		Option3: "C",
		Option4: "D",
	}

	// Act
	options := question.Options()

	// Assert: порядок соответствует номерам вариантов
	assert.Equal(t, []string{"A", "B", "C", "D"}, options)
}

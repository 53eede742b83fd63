package entity

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Лимиты колонок таблицы profiles заданы в миграции; gorm-теги модели
// обязаны совпадать с ней, иначе модель вводит в заблуждение.
func TestProfile_ColumnTagsMatchSchema(t *testing.T) {
	// Arrange
	expected := map[string]string{
		"Username":    "size:30;not null;uniqueIndex",
		"DisplayName": "size:100;not null;default:''",
		"Bio":         "size:500;not null;default:''",
		"AvatarURL":   "type:text;not null;default:''",
	}
	profileType := reflect.TypeOf(Profile{})

	for fieldName, expectedTag := range expected {
		// Act
		field, ok := profileType.FieldByName(fieldName)
		require.True(t, ok, "Поле %s должно существовать в Profile", fieldName)

		// Assert
		assert.Equal(t, expectedTag, field.Tag.Get("gorm"),
			"gorm-тег поля %s должен совпадать со схемой миграции", fieldName)
	}
}

func TestProfile_TableName(t *testing.T) {
	assert.Equal(t, "profiles", Profile{}.TableName())
}

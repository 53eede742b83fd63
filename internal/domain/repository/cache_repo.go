package repository

import (
	"time"
)

// CacheRepository определяет методы для работы с кешем.
// Используется для кеширования неизменяемых наборов вопросов;
// элементы ленты через кеш не проходят никогда.
type CacheRepository interface {
	Set(key string, value interface{}, expiration time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
	SetJSON(key string, value interface{}, expiration time.Duration) error
	GetJSON(key string, dest interface{}) error
}

package domain

import "strings"

// matchesSearch проверяет вхождение подстроки в контактные поля бронирования
// Поиск без учёта регистра, как в админ-панели
func matchesSearch(b *Booking, term string) bool {
	term = strings.ToLower(term)

	fields := []string{
		b.Name,
		b.Email,
		b.Phone,
		b.Company,
		b.Purpose,
	}

	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), term) {
			return true
		}
	}

	return false
}

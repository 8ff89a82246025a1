package form

import (
	_ "embed"
)

const SubmitPath = "/submit"

//go:embed form.html
var page []byte

// Page возвращает копию страницы, общий буфер наружу не отдаем
func Page() []byte {
	result := make([]byte, len(page))
	copy(result, page)
	return result
}

package model

// Category раздел каталога. Id назначаются последовательно, начиная с 1.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Img  string `json:"img"`
}

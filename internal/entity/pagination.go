package entity

type PaginationInput struct {
	Limit  int
	Offset int
}

func NewPaginationInput(limit int, offset int) *PaginationInput {
	return &PaginationInput{
		Limit:  limit,
		Offset: offset,
	}
}

// controller model for every list endpoint
type PageOutputModel[T any] struct {
	Items  []T `json:"items"`
	Total  int `json:"total"`
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

func NewPage[T any](items []T, total int, pg *PaginationInput) *PageOutputModel[T] {
	if items == nil {
		items = make([]T, 0)
	}

	return &PageOutputModel[T]{Items: items, Total: total, Limit: pg.Limit, Offset: pg.Offset}
}

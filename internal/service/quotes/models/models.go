package models

// ItemQuoteRequest запрос на расчет стоимости тура или впечатления
type ItemQuoteRequest struct {
	SubjectKind string `json:"subjectKind"`
	SubjectID   string `json:"subjectId"`
	Travelers   int    `json:"travelers"`
	Children    int    `json:"children"`
}

// ItemQuoteResponse расчет стоимости
type ItemQuoteResponse struct {
	SubjectKind       string  `json:"subjectKind"`
	SubjectID         string  `json:"subjectId"`
	Title             string  `json:"title"`
	PricePerPerson    float64 `json:"pricePerPerson"`
	Travelers         int     `json:"travelers"`
	Children          int     `json:"children"`
	ChildDiscountRate float64 `json:"childDiscountRate"`
	TotalPrice        float64 `json:"totalPrice"`
}

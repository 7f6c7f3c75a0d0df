package domain

// FirstPage is the lowest page the transaction history can request
const FirstPage = 1

// PagerState is the transaction history position last confirmed by the server
type PagerState struct {
	Page       int
	TotalPages int
}

// NewPagerState returns the state of a freshly opened history page
func NewPagerState() PagerState {
	return PagerState{Page: FirstPage}
}

// NextPage returns the page the Next control requests
func (s PagerState) NextPage() int {
	return s.current() + 1
}

// PrevPage returns the page the Prev control requests, never below FirstPage
func (s PagerState) PrevPage() int {
	return max(FirstPage, s.current()-1)
}

// Confirm returns the state after the server answered with page/totalPages
func (s PagerState) Confirm(page, totalPages int) PagerState {
	return PagerState{Page: page, TotalPages: totalPages}
}

func (s PagerState) current() int {
	if s.Page < FirstPage {
		return FirstPage
	}
	return s.Page
}

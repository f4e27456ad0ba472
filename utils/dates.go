// utils/dates.go
package utils

import "time"

const DateLayout = "2006-01-02"

func Today() string {
	return time.Now().Format(DateLayout)
}

func Tomorrow() string {
	return time.Now().AddDate(0, 0, 1).Format(DateLayout)
}

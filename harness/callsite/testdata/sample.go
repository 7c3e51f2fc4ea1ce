package sample

func check(args ...interface{}) {}

func body() {
	check(1 == 1)
	check(
		"multi",
		"line",
	)
	other(check)
}

func other(f func(...interface{})) {}

func twice() {
	check(true); check(false)
}

package bankdata

// ValidationError marks missing or malformed caller input. The HTTP
// layer maps it to a 400 response.
type ValidationError struct {
	Msg string
}

func (e ValidationError) Error() string {
	return e.Msg
}

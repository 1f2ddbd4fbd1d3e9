package user

// CreateInput is the input for user registration.
type CreateInput struct {
	Name string
}

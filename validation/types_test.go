package validation

type ErrorBody struct {
	Kind       string     `json:"kind"`
	Message    string     `json:"message,omitempty"`
	Violations Violations `json:"violations,omitempty"`
}

type TestRequestBody struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"omitempty,email"`
}

func (TestRequestBody) JSONError(err error) any {
	return ErrorBody{Kind: "json", Message: err.Error()}
}

func (TestRequestBody) ValidateError(violations Violations) any {
	return ErrorBody{Kind: "validation", Violations: violations}
}

type Person struct {
	Age int `json:"age" validate:"gte=0"`
}

func (Person) JSONError(err error) any {
	return ErrorBody{Kind: "json", Message: err.Error()}
}

func (Person) ValidateError(violations Violations) any {
	return ErrorBody{Kind: "validation", Violations: violations}
}

type Address struct {
	Street string `json:"street" validate:"required"`
}

type Customer struct {
	Address Address  `json:"address"`
	Tags    []string `json:"tags" validate:"max=2"`
	Ignored string   `json:"-" validate:"required"`
}

func (Customer) JSONError(err error) any {
	return ErrorBody{Kind: "json", Message: err.Error()}
}

func (Customer) ValidateError(violations Violations) any {
	return ErrorBody{Kind: "validation", Violations: violations}
}

type Tags []string

func (Tags) JSONError(err error) any {
	return ErrorBody{Kind: "json", Message: err.Error()}
}

func (Tags) ValidateError(violations Violations) any {
	return ErrorBody{Kind: "validation", Violations: violations}
}

type Tracked struct {
	Value string `json:"value" validate:"tracked"`
}

func (Tracked) JSONError(err error) any {
	return ErrorBody{Kind: "json", Message: err.Error()}
}

func (Tracked) ValidateError(violations Violations) any {
	return ErrorBody{Kind: "validation", Violations: violations}
}

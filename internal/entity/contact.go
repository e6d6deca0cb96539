package entity

type Contact struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Date    string `json:"date"`
}

type CreateContactRequest struct {
	Name    *string `json:"name"`
	Email   *string `json:"email"`
	Message *string `json:"message"`
}

func (r *CreateContactRequest) Validate() error {
	if !present(r.Name, r.Email, r.Message) {
		return ErrMissingFields
	}
	return nil
}

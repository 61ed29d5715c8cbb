package domain

type User struct {
	ID     string
	Name   string
	Avatar *string
}

var users = []User{
	{ID: "1", Name: "John Doe"},
	{ID: "2", Name: "Jane Williams Smith"},
	{ID: "3", Name: "Mike Johnson"},
	{ID: "4", Name: "Amy Chen"},
	{ID: "5", Name: "Bob Wilson"},
	{ID: "6", Name: "Chris Lee"},
}

// Users returns a copy of the static user directory.
func Users() []User {
	out := make([]User, len(users))
	copy(out, users)
	return out
}

func LookupUser(id string) (User, bool) {
	for _, user := range users {
		if user.ID == id {
			return user, true
		}
	}
	return User{}, false
}

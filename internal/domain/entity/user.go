package entity

// User é o usuário autenticado, como devolvido pelo login.
type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Phone string `json:"phone,omitempty"`
}

// DisplayName é o nome da saudação: nome, depois email, depois "User".
func (u User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	if u.Email != "" {
		return u.Email
	}
	return "User"
}

// Session é o par token/usuário persistido localmente após o login.
type Session struct {
	Token string
	User  User
}

// Credentials são os dados enviados no login.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Registration são os dados enviados no cadastro.
type Registration struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// ProfileUpdate é um payload parcial: campos vazios não são enviados.
type ProfileUpdate struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Password string `json:"password,omitempty"`
}

// FieldCount conta quantos campos o payload leva.
func (p ProfileUpdate) FieldCount() int {
	n := 0
	for _, v := range []string{p.Name, p.Email, p.Phone, p.Password} {
		if v != "" {
			n++
		}
	}
	return n
}

// IsEmpty indica se o payload não leva nenhum campo.
func (p ProfileUpdate) IsEmpty() bool {
	return p.FieldCount() == 0
}

package repository

// LocalStorage é o armazenamento chave/valor persistente que guarda a sessão.
type LocalStorage interface {
	GetItem(key string) (string, bool, error)
	SetItem(key, value string) error
	RemoveItem(key string) error
}

package repoargs

type RepositoryName string

const (
	UserRepoName        RepositoryName = "user"
	EventRepoName       RepositoryName = "event"
	TransactionRepoName RepositoryName = "transaction"
)

// Page - offset-based пагинация. Нумерация страниц с единицы.
type Page struct {
	Number uint
	Size   uint
}

const DefaultPageSize = 10

func (p Page) Normalize() Page {
	if p.Number == 0 {
		p.Number = 1
	}
	if p.Size == 0 {
		p.Size = DefaultPageSize
	}
	return p
}

func (p Page) Offset() uint {
	return (p.Number - 1) * p.Size
}

package storage

// Repositories groups one repository per collection.
type Repositories struct {
	Categories   IRepository[CategoryDocument]
	Transactions IRepository[TransactionDocument]
	Users        IRepository[UserDocument]
}

func NewRepositories(db Database) Repositories {
	return Repositories{
		Categories:   NewRepository[CategoryDocument](CategoriesCollection, db.Collection(CategoriesCollection)),
		Transactions: NewRepository[TransactionDocument](TransactionsCollection, db.Collection(TransactionsCollection)),
		Users:        NewRepository[UserDocument](UsersCollection, db.Collection(UsersCollection)),
	}
}

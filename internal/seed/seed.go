// Package seed bootstraps the store with sample data the first time the
// service runs.  Seeding is a startup collaborator, not engine logic:
// each collection is written only when its key is entirely absent, so an
// existing deployment is never overwritten.
package seed

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tadelakiran/Book-Library-Management/internal/model"
	"github.com/tadelakiran/Book-Library-Management/internal/repository"
	"github.com/tadelakiran/Book-Library-Management/internal/store"
	"github.com/tadelakiran/Book-Library-Management/internal/utils"
)

// DemoPassword is the password of every seeded demo account.
const DemoPassword = "password123"

// Ensure writes the sample categories, books, users and borrow records
// for any collection key that does not exist yet.  bcryptCost is used to
// hash the demo account passwords.
func Ensure(ctx context.Context, s store.Store, bcryptCost int) error {
	if err := ensureCategories(ctx, s); err != nil {
		return fmt.Errorf("seed categories: %w", err)
	}
	if err := ensureBooks(ctx, s); err != nil {
		return fmt.Errorf("seed books: %w", err)
	}
	if err := ensureUsers(ctx, s, bcryptCost); err != nil {
		return fmt.Errorf("seed users: %w", err)
	}
	if err := ensureBorrowRecords(ctx, s); err != nil {
		return fmt.Errorf("seed borrow records: %w", err)
	}
	return nil
}

func absent(ctx context.Context, s store.Store, key string) (bool, error) {
	_, ok, err := s.Read(ctx, key)
	return !ok, err
}

func ensureCategories(ctx context.Context, s store.Store) error {
	missing, err := absent(ctx, s, store.KeyCategories)
	if err != nil || !missing {
		return err
	}
	now := time.Now().UTC()
	categories := []model.Category{
		{ID: uuid.NewString(), Name: "Fiction", Description: "Fictional literature and novels", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Science", Description: "Scientific books and research", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Technology", Description: "Books about technology and programming", CreatedAt: now},
		{ID: uuid.NewString(), Name: "History", Description: "Historical books and biographies", CreatedAt: now},
		{ID: uuid.NewString(), Name: "Self-Help", Description: "Personal development and self-improvement", CreatedAt: now},
	}
	return repository.NewCategoryRepo(s, repository.NewBookRepo(s)).ReplaceAll(ctx, categories)
}

func ensureBooks(ctx context.Context, s store.Store) error {
	missing, err := absent(ctx, s, store.KeyBooks)
	if err != nil || !missing {
		return err
	}
	categories, err := repository.NewCategoryRepo(s, repository.NewBookRepo(s)).All(ctx)
	if err != nil {
		return err
	}
	catID := func(name string) string {
		for _, c := range categories {
			if c.Name == name {
				return c.ID
			}
		}
		return ""
	}
	now := time.Now().UTC()
	mk := func(title, author, isbn, category, description string, total, available int) model.Book {
		return model.Book{
			ID:              uuid.NewString(),
			Title:           title,
			Author:          author,
			ISBN:            isbn,
			CategoryID:      catID(category),
			Description:     description,
			TotalCopies:     total,
			AvailableCopies: available,
			CreatedAt:       now,
			UpdatedAt:       now,
		}
	}
	books := []model.Book{
		mk("The Great Gatsby", "F. Scott Fitzgerald", "978-0-7432-7356-5", "Fiction",
			"A classic American novel set in the Jazz Age", 5, 3),
		mk("Clean Code", "Robert C. Martin", "978-0-13-235088-4", "Technology",
			"A handbook of agile software craftsmanship", 8, 5),
		mk("Sapiens", "Yuval Noah Harari", "978-0-06-231609-7", "History",
			"A brief history of humankind", 6, 4),
		mk("The Physics of the Impossible", "Michio Kaku", "978-0-385-52069-0", "Science",
			"A scientific exploration into the world of phasers, force fields, teleportation, and time travel", 4, 2),
		mk("Atomic Habits", "James Clear", "978-0-7352-1129-2", "Self-Help",
			"An easy and proven way to build good habits and break bad ones", 10, 7),
		mk("1984", "George Orwell", "978-0-452-28423-4", "Fiction",
			"A dystopian social science fiction novel", 7, 4),
	}
	return repository.NewBookRepo(s).ReplaceAll(ctx, books)
}

func ensureUsers(ctx context.Context, s store.Store, bcryptCost int) error {
	missing, err := absent(ctx, s, store.KeyUsers)
	if err != nil || !missing {
		return err
	}
	hash, err := utils.HashPassword(DemoPassword, bcryptCost)
	if err != nil {
		return err
	}
	now := time.Now().UTC()
	users := []model.User{
		{ID: uuid.NewString(), Email: "admin@library.com", Name: "Library Admin", Role: model.RoleAdmin, PasswordHash: hash, CreatedAt: now},
		{ID: uuid.NewString(), Email: "john@email.com", Name: "John Doe", Role: model.RoleUser, PasswordHash: hash, CreatedAt: now},
		{ID: uuid.NewString(), Email: "jane@email.com", Name: "Jane Smith", Role: model.RoleUser, PasswordHash: hash, CreatedAt: now},
	}
	return repository.NewUserRepo(s).ReplaceAll(ctx, users)
}

// ensureBorrowRecords seeds two loans: one healthy loan due a week out
// and one overdue by three days with a renewal already spent.  Borrower
// and book references are resolved against the live collections so the
// records stay valid when only some keys were absent.
func ensureBorrowRecords(ctx context.Context, s store.Store) error {
	missing, err := absent(ctx, s, store.KeyBorrowRecords)
	if err != nil || !missing {
		return err
	}
	users, err := repository.NewUserRepo(s).All(ctx)
	if err != nil {
		return err
	}
	books, err := repository.NewBookRepo(s).All(ctx)
	if err != nil {
		return err
	}
	userID := func(email string) string {
		for _, u := range users {
			if u.Email == email {
				return u.ID
			}
		}
		return ""
	}
	bookID := func(title string) string {
		for _, b := range books {
			if b.Title == title {
				return b.ID
			}
		}
		return ""
	}
	now := time.Now().UTC()
	records := []model.BorrowRecord{
		{
			ID:           uuid.NewString(),
			UserID:       userID("john@email.com"),
			BookID:       bookID("The Great Gatsby"),
			BorrowDate:   now.Add(-7 * 24 * time.Hour),
			DueDate:      now.Add(7 * 24 * time.Hour),
			Status:       model.StatusBorrowed,
			RenewalCount: 0,
		},
		{
			ID:           uuid.NewString(),
			UserID:       userID("jane@email.com"),
			BookID:       bookID("The Physics of the Impossible"),
			BorrowDate:   now.Add(-10 * 24 * time.Hour),
			DueDate:      now.Add(-3 * 24 * time.Hour),
			Status:       model.StatusBorrowed,
			RenewalCount: 1,
		},
	}
	return repository.NewBorrowRepo(s).ReplaceAll(ctx, records)
}

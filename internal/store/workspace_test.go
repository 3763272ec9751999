package store_test

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/kubev2v/clause-builder/internal/models"
	"github.com/kubev2v/clause-builder/internal/store"
	"github.com/kubev2v/clause-builder/internal/store/migrations"
	srvErrors "github.com/kubev2v/clause-builder/pkg/errors"
	"github.com/kubev2v/clause-builder/pkg/tabular"
)

var _ = Describe("WorkspaceStore", func() {
	var (
		ctx context.Context
		s   *store.Store
		db  *sql.DB
		t   *tabular.Table
	)

	BeforeEach(func() {
		ctx = context.Background()

		var err error
		db, err = store.NewDB(":memory:")
		Expect(err).NotTo(HaveOccurred())

		err = migrations.Run(ctx, db)
		Expect(err).NotTo(HaveOccurred())

		s = store.NewStore(db)

		t, err = tabular.Parse("id,name\n1,O'Brien\n2,\"a,b\"\n3")
		Expect(err).NotTo(HaveOccurred())
	})

	AfterEach(func() {
		if db != nil {
			db.Close()
		}
	})

	Context("Get", func() {
		// Given an empty store
		// When we get a workspace
		// Then it should return a not found error
		It("should return ResourceNotFoundError for an unknown workspace", func() {
			_, err := s.Workspace().Get(ctx, uuid.New())
			Expect(err).To(HaveOccurred())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		// Given a saved workspace
		// When we get it back
		// Then the table should be identical, ragged rows included
		It("should return the saved workspace", func() {
			w := models.NewWorkspace(models.SourceFile, "users.csv", t)
			Expect(s.Workspace().Save(ctx, w)).To(Succeed())

			got, err := s.Workspace().Get(ctx, w.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.ID).To(Equal(w.ID))
			Expect(got.Source).To(Equal(models.SourceFile))
			Expect(got.Name).To(Equal("users.csv"))
			Expect(got.Table.Header).To(Equal(t.Header))
			Expect(got.Table.Rows).To(Equal(t.Rows))
			Expect(got.CreatedAt).To(BeTemporally("~", w.CreatedAt, time.Millisecond))
		})
	})

	Context("Save", func() {
		// Given a saved workspace
		// When we save it again with a new table
		// Then the table should be replaced, not merged
		It("should replace the table of an existing workspace", func() {
			w := models.NewWorkspace(models.SourceFile, "users.csv", t)
			Expect(s.Workspace().Save(ctx, w)).To(Succeed())

			replacement, err := tabular.Parse("code\nX")
			Expect(err).NotTo(HaveOccurred())
			w.Table = replacement
			w.Source = models.SourceQuery
			w.Name = "SELECT code FROM t"
			w.UpdatedAt = time.Now().UTC()
			Expect(s.Workspace().Save(ctx, w)).To(Succeed())

			got, err := s.Workspace().Get(ctx, w.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(got.Table.Header).To(Equal(tabular.Header{"code"}))
			Expect(got.Table.Rows).To(Equal([]tabular.Row{{"X"}}))
			Expect(got.Source).To(Equal(models.SourceQuery))

			all, err := s.Workspace().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(1))
		})

		It("should refuse a workspace without table", func() {
			w := models.NewWorkspace(models.SourceFile, "x.csv", nil)
			err := s.Workspace().Save(ctx, w)
			Expect(srvErrors.IsNoTableLoadedError(err)).To(BeTrue())
		})
	})

	Context("List", func() {
		It("should return workspaces most recent first", func() {
			older := models.NewWorkspace(models.SourceFile, "old.csv", t)
			older.UpdatedAt = older.UpdatedAt.Add(-time.Hour)
			newer := models.NewWorkspace(models.SourceFile, "new.csv", t)
			Expect(s.Workspace().Save(ctx, older)).To(Succeed())
			Expect(s.Workspace().Save(ctx, newer)).To(Succeed())

			all, err := s.Workspace().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(HaveLen(2))
			Expect(all[0].Name).To(Equal("new.csv"))
			Expect(all[1].Name).To(Equal("old.csv"))
		})

		It("should return an empty list", func() {
			all, err := s.Workspace().List(ctx)
			Expect(err).NotTo(HaveOccurred())
			Expect(all).To(BeEmpty())
		})
	})

	Context("Delete", func() {
		It("should delete a workspace", func() {
			w := models.NewWorkspace(models.SourceFile, "users.csv", t)
			Expect(s.Workspace().Save(ctx, w)).To(Succeed())

			Expect(s.Workspace().Delete(ctx, w.ID)).To(Succeed())

			_, err := s.Workspace().Get(ctx, w.ID)
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})

		It("should return not found for an unknown workspace", func() {
			err := s.Workspace().Delete(ctx, uuid.New())
			Expect(srvErrors.IsResourceNotFoundError(err)).To(BeTrue())
		})
	})
})

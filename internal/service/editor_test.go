package service

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"content_sync/internal/domain"
	"content_sync/internal/service/mocks"
)

type EditorTestSuite struct {
	suite.Suite
	ctrl *gomock.Controller

	articles  *mocks.MockArticleStore
	aiFields  *mocks.MockAIFieldStore
	history   *mocks.MockEditHistoryStore
	txManager *mocks.MockTransactionManager

	editor *Editor
}

func (s *EditorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.articles = mocks.NewMockArticleStore(s.ctrl)
	s.aiFields = mocks.NewMockAIFieldStore(s.ctrl)
	s.history = mocks.NewMockEditHistoryStore(s.ctrl)
	s.txManager = mocks.NewMockTransactionManager(s.ctrl)

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
	s.editor = NewEditor(s.articles, s.aiFields, s.history, s.txManager, logger)
}

func (s *EditorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestEditorTestSuite(t *testing.T) {
	suite.Run(t, new(EditorTestSuite))
}

func (s *EditorTestSuite) TestUpdateField() {
	ctx := context.Background()

	s.articles.EXPECT().GetByArticleID(ctx, "ART1_a").
		Return(&domain.Article{ArticleID: "ART1_a", TitleSeo: "old seo title"}, nil)

	s.txManager.EXPECT().WithTransaction(ctx, gomock.Any()).DoAndReturn(
		func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		},
	)

	s.history.EXPECT().Append(ctx, domain.EditEntry{
		ArticleID: "ART1_a",
		FieldName: domain.FieldTitleSeo,
		OldValue:  "old seo title",
		NewValue:  "new seo title",
		EditedBy:  "editor@example.com",
	}).Return(nil)
	s.articles.EXPECT().UpdateField(ctx, "ART1_a", domain.FieldTitleSeo, "new seo title").Return(nil)
	s.aiFields.EXPECT().MarkManual(ctx, "ART1_a", domain.FieldTitleSeo).Return(nil)

	err := s.editor.UpdateField(ctx, "ART1_a", domain.FieldTitleSeo, "new seo title", "editor@example.com")
	s.NoError(err)
}

func (s *EditorTestSuite) TestUpdateField_UnknownField() {
	ctx := context.Background()

	s.articles.EXPECT().GetByArticleID(ctx, "ART1_a").
		Return(&domain.Article{ArticleID: "ART1_a"}, nil)

	err := s.editor.UpdateField(ctx, "ART1_a", "status", "published", "editor@example.com")
	s.Error(err)
}

func (s *EditorTestSuite) TestUpdateField_MissingArticle() {
	ctx := context.Background()

	s.articles.EXPECT().GetByArticleID(ctx, "ART9_z").Return(nil, domain.ErrNotFound)

	err := s.editor.UpdateField(ctx, "ART9_z", domain.FieldTitle, "anything", "editor@example.com")
	s.ErrorIs(err, domain.ErrNotFound)
}

package document

import (
	"context"
	"sort"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/chosundeveloper/rollbook/internal/domain"
	"github.com/chosundeveloper/rollbook/internal/store"
)

type membersDoc struct {
	Members []domain.Member `json:"members"`
}

type memberRepository struct {
	store store.Store
	mu    sync.Mutex
}

func NewMemberRepository(s store.Store) *memberRepository {
	return &memberRepository{store: s}
}

func (r *memberRepository) load(ctx context.Context) (*membersDoc, error) {
	doc := &membersDoc{Members: []domain.Member{}}
	if err := r.store.Load(ctx, store.KeyMembers, doc); err != nil {
		return nil, err
	}
	if doc.Members == nil {
		doc.Members = []domain.Member{}
	}
	return doc, nil
}

func (r *memberRepository) GetAll(ctx context.Context) ([]domain.Member, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	return doc.Members, nil
}

func (r *memberRepository) GetByID(ctx context.Context, id string) (*domain.Member, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}
	for i := range doc.Members {
		if doc.Members[i].ID == id {
			member := doc.Members[i]
			return &member, nil
		}
	}
	return nil, nil
}

func (r *memberRepository) Insert(ctx context.Context, member domain.Member) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.load(ctx)
	if err != nil {
		return err
	}
	doc.Members = append(doc.Members, member)
	// 문서는 항상 이름순으로 저장된다
	collator := collate.New(language.Korean)
	sort.SliceStable(doc.Members, func(i, j int) bool {
		return collator.CompareString(doc.Members[i].Name, doc.Members[j].Name) < 0
	})
	return r.store.Save(ctx, store.KeyMembers, doc)
}

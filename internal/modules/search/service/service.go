package service

import (
	"log"

	"github.com/google/uuid"
	"github.com/meilisearch/meilisearch-go"

	"fitlink.app/backend/internal/entity"
)

const professionalsIndex = "professionals"

// SearchService indexes professional accounts in Meilisearch. Callers
// must tolerate a nil service: the engine is optional and search falls
// back to SQL when it is not configured.
type SearchService interface {
	IndexUser(user *entity.User) error
	RemoveUser(id string) error
	SearchProfessionals(query string, roles []entity.Role, limit int) ([]uuid.UUID, error)
}

type searchService struct {
	client meilisearch.ServiceManager
}

func NewSearchService(client meilisearch.ServiceManager) SearchService {
	s := &searchService{client: client}
	s.initIndexes()
	return s
}

func (s *searchService) initIndexes() {
	filterableAttrs := []string{"role", "is_active"}
	filterableInterface := make([]any, len(filterableAttrs))
	for i, v := range filterableAttrs {
		filterableInterface[i] = v
	}
	if _, err := s.client.Index(professionalsIndex).UpdateFilterableAttributes(&filterableInterface); err != nil {
		log.Printf("Failed to update professionals filterable attributes: %v", err)
	}

	sortableAttrs := []string{"created_at"}
	if _, err := s.client.Index(professionalsIndex).UpdateSortableAttributes(&sortableAttrs); err != nil {
		log.Printf("Failed to update professionals sortable attributes: %v", err)
	}
}

type professionalDoc struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	IsActive  bool   `json:"is_active"`
	CreatedAt int64  `json:"created_at"`
}

func (s *searchService) IndexUser(user *entity.User) error {
	name := ""
	if user.Name != nil {
		name = *user.Name
	}

	doc := professionalDoc{
		ID:        user.ID.String(),
		Name:      name,
		Email:     user.Email,
		Role:      string(user.Role),
		IsActive:  user.IsActive,
		CreatedAt: user.CreatedAt.Unix(),
	}

	_, err := s.client.Index(professionalsIndex).AddDocuments([]professionalDoc{doc}, strPtr("id"))
	return err
}

func strPtr(s string) *string {
	return &s
}

func (s *searchService) RemoveUser(id string) error {
	_, err := s.client.Index(professionalsIndex).DeleteDocument(id)
	return err
}

func (s *searchService) SearchProfessionals(query string, roles []entity.Role, limit int) ([]uuid.UUID, error) {
	roleFilter := make([]string, 0, len(roles))
	for _, role := range roles {
		roleFilter = append(roleFilter, "role = "+string(role))
	}

	resp, err := s.client.Index(professionalsIndex).Search(query, &meilisearch.SearchRequest{
		Filter: []string{"is_active = true", "(" + joinOr(roleFilter) + ")"},
		Sort:   []string{"created_at:desc"},
		Limit:  int64(limit),
	})
	if err != nil {
		return nil, err
	}

	ids := make([]uuid.UUID, 0, len(resp.Hits))
	for _, hit := range resp.Hits {
		var doc professionalDoc
		if err := hit.Decode(&doc); err != nil {
			continue
		}
		id, err := uuid.Parse(doc.ID)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	return ids, nil
}

func joinOr(clauses []string) string {
	out := ""
	for i, clause := range clauses {
		if i > 0 {
			out += " OR "
		}
		out += clause
	}
	return out
}

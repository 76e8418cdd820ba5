package opensearch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/opensearch-project/opensearch-go/v2"
	"github.com/opensearch-project/opensearch-go/v2/opensearchapi"

	"github.com/kingrain94/rental-manager-api/internal/config"
	"github.com/kingrain94/rental-manager-api/internal/domain"
	"github.com/kingrain94/rental-manager-api/internal/repository"
)

const defaultSearchSize = 50

type roomSearchRepository struct {
	client *opensearch.Client
	index  string
}

func NewRepository(client *opensearch.Client, cfg *config.OpenSearchConfig) repository.SearchRepository {
	return &roomSearchRepository{
		client: client,
		index:  cfg.RoomIndex,
	}
}

// roomMapping keeps ids and status as keywords and analyses the free text fields
const roomMapping = `{
	"mappings": {
		"properties": {
			"id": { "type": "keyword" },
			"name": { "type": "text", "fields": { "raw": { "type": "keyword" } } },
			"address": { "type": "text" },
			"description": { "type": "text" },
			"price": { "type": "double" },
			"image_url": { "type": "keyword", "index": false },
			"status": { "type": "keyword" },
			"tenant_id": { "type": "keyword" },
			"created_at": { "type": "date" },
			"updated_at": { "type": "date" }
		}
	},
	"settings": {
		"index": {
			"number_of_shards": 1,
			"number_of_replicas": 1,
			"refresh_interval": "1s"
		}
	}
}`

func (r *roomSearchRepository) EnsureIndex(ctx context.Context) error {
	exists := opensearchapi.IndicesExistsRequest{
		Index: []string{r.index},
	}
	res, err := exists.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to check index existence: %w", err)
	}
	res.Body.Close()

	if res.StatusCode == http.StatusOK {
		return nil
	}

	create := opensearchapi.IndicesCreateRequest{
		Index: r.index,
		Body:  strings.NewReader(roomMapping),
	}
	res, err = create.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error creating index: %s", res.String())
	}
	return nil
}

func (r *roomSearchRepository) IndexRoom(ctx context.Context, room *domain.Room) error {
	data, err := json.Marshal(room)
	if err != nil {
		return fmt.Errorf("failed to marshal room: %w", err)
	}

	req := opensearchapi.IndexRequest{
		Index:      r.index,
		DocumentID: room.ID,
		Body:       bytes.NewReader(data),
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to index room: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		return fmt.Errorf("error indexing room: %s", res.String())
	}
	return nil
}

// DeleteRoom treats a missing document as already deleted
func (r *roomSearchRepository) DeleteRoom(ctx context.Context, id string) error {
	req := opensearchapi.DeleteRequest{
		Index:      r.index,
		DocumentID: id,
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return fmt.Errorf("failed to delete room document: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() && res.StatusCode != http.StatusNotFound {
		return fmt.Errorf("error deleting room document: %s", res.String())
	}
	return nil
}

func (r *roomSearchRepository) SearchRooms(ctx context.Context, query string, status domain.RoomStatus) ([]domain.Room, error) {
	body, err := json.Marshal(buildRoomQuery(query, status))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal query: %w", err)
	}

	req := opensearchapi.SearchRequest{
		Index: []string{r.index},
		Body:  bytes.NewReader(body),
	}
	res, err := req.Do(ctx, r.client)
	if err != nil {
		return nil, fmt.Errorf("failed to execute search: %w", err)
	}
	defer res.Body.Close()

	if res.IsError() {
		if res.StatusCode == http.StatusNotFound {
			return []domain.Room{}, nil
		}
		return nil, fmt.Errorf("search request failed: %s", res.String())
	}

	var result struct {
		Hits struct {
			Hits []struct {
				Source domain.Room `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	rooms := make([]domain.Room, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		rooms = append(rooms, hit.Source)
	}
	return rooms, nil
}

// buildRoomQuery matches the text across name, address and description. An empty text
// matches every room; status filters on the persisted field.
func buildRoomQuery(text string, status domain.RoomStatus) map[string]any {
	must := make([]map[string]any, 0, 1)
	if text = strings.TrimSpace(text); text != "" {
		must = append(must, map[string]any{
			"multi_match": map[string]any{
				"query":     text,
				"fields":    []string{"name^3", "address", "description"},
				"fuzziness": "AUTO",
			},
		})
	} else {
		must = append(must, map[string]any{"match_all": map[string]any{}})
	}

	boolQuery := map[string]any{"must": must}
	if status != "" {
		boolQuery["filter"] = []map[string]any{
			{"term": map[string]any{"status": string(status)}},
		}
	}

	return map[string]any{
		"query": map[string]any{"bool": boolQuery},
		"size":  defaultSearchSize,
		"sort": []any{
			"_score",
			map[string]any{"name.raw": map[string]any{"order": "asc"}},
		},
	}
}

package results

import (
	"errors"
	"sort"
	"testing"

	"bitbucket.org/optimizer/backend/core/entities"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
	"github.com/stretchr/testify/assert"
)

// memoryTable is an in memory table keyed by partition and key. Queries are
// served in pages of pageSize items.
type memoryTable struct {
	items    map[string]map[string]map[string]*dynamodb.AttributeValue
	pageSize int
	fail     error

	dynamodbiface.DynamoDBAPI
	t *testing.T
}

func newMemoryTable(t *testing.T) *memoryTable {
	return &memoryTable{
		items:    map[string]map[string]map[string]*dynamodb.AttributeValue{},
		pageSize: 2,
		t:        t,
	}
}

func (m *memoryTable) PutItem(in *dynamodb.PutItemInput) (*dynamodb.PutItemOutput, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	assert.Equal(m.t, "experiments", aws.StringValue(in.TableName))
	p := aws.StringValue(in.Item["partition"].S)
	k := aws.StringValue(in.Item["key"].S)
	if m.items[p] == nil {
		m.items[p] = map[string]map[string]*dynamodb.AttributeValue{}
	}
	m.items[p][k] = in.Item

	return &dynamodb.PutItemOutput{}, nil
}

func (m *memoryTable) GetItem(in *dynamodb.GetItemInput) (*dynamodb.GetItemOutput, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	p := aws.StringValue(in.Key["partition"].S)
	k := aws.StringValue(in.Key["key"].S)

	return &dynamodb.GetItemOutput{Item: m.items[p][k]}, nil
}

func (m *memoryTable) Query(in *dynamodb.QueryInput) (*dynamodb.QueryOutput, error) {
	if m.fail != nil {
		return nil, m.fail
	}
	p := aws.StringValue(in.ExpressionAttributeValues[":p"].S)
	keys := make([]string, 0, len(m.items[p]))
	for k := range m.items[p] {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	start := 0
	if in.ExclusiveStartKey != nil {
		last := aws.StringValue(in.ExclusiveStartKey["key"].S)
		start = sort.SearchStrings(keys, last) + 1
	}
	end := start + m.pageSize
	out := &dynamodb.QueryOutput{}
	if end < len(keys) {
		out.LastEvaluatedKey = map[string]*dynamodb.AttributeValue{
			"partition": {S: aws.String(p)},
			"key":       {S: aws.String(keys[end-1])},
		}
	} else {
		end = len(keys)
	}
	for _, k := range keys[start:end] {
		out.Items = append(out.Items, m.items[p][k])
	}

	return out, nil
}

func TestStoreResult(t *testing.T) {
	cases := []struct {
		Name   string
		Result *entities.Result
		Error  error
	}{
		{
			Name:   "Correct",
			Result: &entities.Result{ID: "r1", Dataset: "f1", Run: 0, Fitness: 295, Genes: []uint8{1, 0, 1}},
		},
		{
			Name:  "Missing Result",
			Error: ErrorMissingResult,
		},
		{
			Name:   "Missing ID",
			Result: &entities.Result{Dataset: "f1"},
			Error:  ErrorMissingResultID,
		},
		{
			Name:   "Missing Dataset",
			Result: &entities.Result{ID: "r1"},
			Error:  ErrorMissingDataset,
		},
	}

	for _, c := range cases {
		t.Run(c.Name, func(t *testing.T) {
			storage := New(nil, WithClient(newMemoryTable(t)), WithTable("experiments"))
			err := storage.StoreResult(c.Result)
			assert.Equal(t, c.Error, err)
			if c.Error == nil {
				assert.NotEmpty(t, c.Result.CreationTime)
			}
		})
	}
}

func TestGetResults(t *testing.T) {
	assert := assert.New(t)
	table := newMemoryTable(t)
	storage := New(nil, WithClient(table), WithTable("experiments"))

	ids := []string{"e", "a", "d", "b", "c"}
	for run, id := range ids {
		err := storage.StoreResult(&entities.Result{
			ID:      id,
			Dataset: "f1",
			Run:     run,
			Seed:    int64(run + 1),
			Fitness: float64(run * 10),
			Genes:   []uint8{1, uint8(run % 2)},
			Optimum: 295,
		})
		if err != nil {
			t.Fatalf("err: %s", err)
		}
	}
	if err := storage.StoreResult(&entities.Result{ID: "x", Dataset: "f2"}); err != nil {
		t.Fatalf("err: %s", err)
	}

	results, err := storage.GetResults("f1")
	assert.NoError(err)
	if assert.Len(results, 5) {
		for run, r := range results {
			assert.Equal(run, r.Run)
			assert.Equal(ids[run], r.ID)
			assert.Equal("f1", r.Dataset)
			assert.Equal(int64(run+1), r.Seed)
			assert.Equal(float64(run*10), r.Fitness)
			assert.Equal([]uint8{1, uint8(run % 2)}, r.Genes)
			assert.Equal(295.0, r.Optimum)
		}
	}

	results, err = storage.GetResults("f3")
	assert.NoError(err)
	assert.Empty(results)

	_, err = storage.GetResults("")
	assert.Equal(ErrorMissingDataset, err)

	table.fail = errors.New("throttled")
	_, err = storage.GetResults("f1")
	assert.Equal(table.fail, err)
}

func TestSummary(t *testing.T) {
	assert := assert.New(t)
	storage := New(nil, WithClient(newMemoryTable(t)), WithTable("experiments"))

	assert.Equal(ErrorMissingSummary, storage.StoreSummary(nil))
	assert.Equal(ErrorMissingDataset, storage.StoreSummary(&entities.Summary{}))

	s := &entities.Summary{Dataset: "f1", Optimum: 295, Runs: 30, Mean: 290.5, Best: 295, Worst: 280, Hits: 12}
	assert.NoError(storage.StoreSummary(s))

	got, err := storage.GetSummary("f1")
	assert.NoError(err)
	assert.Equal(s, got)

	got, err = storage.GetSummary("f2")
	assert.Nil(got)
	assert.Equal(ErrorUnableToFindSummary, err)

	_, err = storage.GetSummary("")
	assert.Equal(ErrorMissingDataset, err)
}

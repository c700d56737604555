package results

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"bitbucket.org/optimizer/backend/core/entities"
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbattribute"
	"github.com/aws/aws-sdk-go/service/dynamodb/dynamodbiface"
)

type dynamo struct {
	svc   dynamodbiface.DynamoDBAPI
	table string
}

const (
	// TableName is the default table used to store the data
	TableName = "knapsack"

	summariesPartition = "summaries"
)

var (
	// ErrorMissingResult nil pointer reference to a result
	ErrorMissingResult = errors.New("Nil pointer reference passed as Result")
	// ErrorMissingSummary nil pointer reference to a summary
	ErrorMissingSummary = errors.New("Nil pointer reference passed as Summary")
	// ErrorMissingResultID missing result id
	ErrorMissingResultID = errors.New("Missing result ID")
	// ErrorMissingDataset missing dataset name
	ErrorMissingDataset = errors.New("Missing dataset")
	// ErrorUnableToFindSummary get summary found no result
	ErrorUnableToFindSummary = errors.New("Unable to find the summary")
)

// WithTable overrides the table name
func WithTable(name string) func(*dynamo) {
	return func(d *dynamo) {
		d.table = name
	}
}

// WithClient uses svc instead of a client built from the session
func WithClient(svc dynamodbiface.DynamoDBAPI) func(*dynamo) {
	return func(d *dynamo) {
		d.svc = svc
	}
}

// New instanciates a dynamo storage for experiment results
func New(sess *session.Session, config ...func(*dynamo)) Storage {
	d := &dynamo{
		table: TableName,
	}
	for _, fn := range config {
		fn(d)
	}
	if d.svc == nil {
		d.svc = dynamodb.New(sess)
	}

	return d
}

func resultsPartition(dataset string) string {
	return fmt.Sprintf("results:%s", dataset)
}

func (d *dynamo) StoreResult(r *entities.Result) error {
	if r == nil {
		return ErrorMissingResult
	}
	if r.ID == "" {
		return ErrorMissingResultID
	}
	if r.Dataset == "" {
		return ErrorMissingDataset
	}
	if r.CreationTime == "" {
		r.CreationTime = time.Now().UTC().Format(time.RFC3339)
	}

	item, err := dynamodbattribute.MarshalMap(r)
	if err != nil {
		return err
	}
	item["partition"] = &dynamodb.AttributeValue{S: aws.String(resultsPartition(r.Dataset))}
	item["key"] = &dynamodb.AttributeValue{S: aws.String(r.ID)}

	_, err = d.svc.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})

	return err
}

func (d *dynamo) GetResults(dataset string) ([]*entities.Result, error) {
	if dataset == "" {
		return nil, ErrorMissingDataset
	}

	var (
		results []*entities.Result
		start   map[string]*dynamodb.AttributeValue
	)
	for {
		in := &dynamodb.QueryInput{
			TableName: aws.String(d.table),
			ExpressionAttributeNames: map[string]*string{
				"#p": aws.String("partition"),
			},
			ExpressionAttributeValues: map[string]*dynamodb.AttributeValue{
				":p": {
					S: aws.String(resultsPartition(dataset)),
				},
			},
			KeyConditionExpression: aws.String("#p = :p"),
			ExclusiveStartKey:      start,
		}
		out, err := d.svc.Query(in)
		if err != nil {
			return nil, err
		}

		page := []*entities.Result{}
		if err := dynamodbattribute.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, err
		}
		results = append(results, page...)

		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		start = out.LastEvaluatedKey
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Run < results[j].Run
	})

	return results, nil
}

func (d *dynamo) StoreSummary(s *entities.Summary) error {
	if s == nil {
		return ErrorMissingSummary
	}
	if s.Dataset == "" {
		return ErrorMissingDataset
	}
	if s.CreationTime == "" {
		s.CreationTime = time.Now().UTC().Format(time.RFC3339)
	}

	item, err := dynamodbattribute.MarshalMap(s)
	if err != nil {
		return err
	}
	item["partition"] = &dynamodb.AttributeValue{S: aws.String(summariesPartition)}
	item["key"] = &dynamodb.AttributeValue{S: aws.String(s.Dataset)}

	_, err = d.svc.PutItem(&dynamodb.PutItemInput{
		TableName: aws.String(d.table),
		Item:      item,
	})

	return err
}

func (d *dynamo) GetSummary(dataset string) (*entities.Summary, error) {
	if dataset == "" {
		return nil, ErrorMissingDataset
	}
	s := &entities.Summary{}

	in := &dynamodb.GetItemInput{
		TableName: aws.String(d.table),
		Key: map[string]*dynamodb.AttributeValue{
			"partition": {
				S: aws.String(summariesPartition),
			},
			"key": {
				S: aws.String(dataset),
			},
		},
	}
	out, err := d.svc.GetItem(in)
	if err != nil {
		return nil, err
	}
	err = dynamodbattribute.UnmarshalMap(out.Item, s)
	if err != nil {
		return nil, err
	}

	if s.Dataset == "" {
		return nil, ErrorUnableToFindSummary
	}

	return s, nil
}

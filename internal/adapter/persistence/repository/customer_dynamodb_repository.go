package repository

import (
	"context"
	"time"

	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultCustomersTableName = "customers"
	customerIDIndex           = "customer_id-index"
)

type customerItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`
	Name       string `dynamodbav:"name"`
	Email      string `dynamodbav:"email"`
	Phone      string `dynamodbav:"phone"`
	Address    string `dynamodbav:"address"`
	CreatedAt  string `dynamodbav:"created_at"`
	UpdatedAt  string `dynamodbav:"updated_at"`
}

// CustomerDynamoRepository persists Customer entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI customer_id-index on customer_id (string)
type CustomerDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.ICustomerRepository = (*CustomerDynamoRepository)(nil)

func NewCustomerDynamoRepository(ddb dynamoAPI, tableName string) *CustomerDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("CUSTOMERS_TABLE", defaultCustomersTableName)
	}
	return &CustomerDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *CustomerDynamoRepository) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	av, err := attributevalue.MarshalMap(customerItem{
		ID:         c.ID,
		CustomerID: c.CustomerID,
		Name:       c.Name,
		Email:      c.Email,
		Phone:      c.Phone,
		Address:    c.Address,
		CreatedAt:  c.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:  c.UpdatedAt.UTC().Format(time.RFC3339Nano),
	})
	if err != nil {
		return entities.Customer{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Customer{}, err
	}
	return c, nil
}

func (r *CustomerDynamoRepository) GetByCustomerID(ctx context.Context, customerID string) (entities.Customer, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(customerIDIndex),
		KeyConditionExpression: aws.String("#cid = :cid"),
		ExpressionAttributeNames: map[string]string{
			"#cid": "customer_id",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":cid": &types.AttributeValueMemberS{Value: customerID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Customer{}, err
	}
	if len(out.Items) == 0 {
		return entities.Customer{}, nil
	}

	var it customerItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Customer{}, err
	}
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	return entities.Customer{
		ID:         it.ID,
		CustomerID: it.CustomerID,
		Name:       it.Name,
		Email:      it.Email,
		Phone:      it.Phone,
		Address:    it.Address,
		CreatedAt:  createdAt,
		UpdatedAt:  updatedAt,
	}, nil
}

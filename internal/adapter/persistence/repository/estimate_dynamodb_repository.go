package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"hauling_pros/internal/domain/entities"
	"hauling_pros/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultEstimatesTableName = "estimates"
	confirmationTokenIndex    = "confirmation_token-index"
)

type estimateItem struct {
	ID         string `dynamodbav:"id"`
	CustomerID string `dynamodbav:"customer_id"`

	Name        string `dynamodbav:"name"`
	Email       string `dynamodbav:"email"`
	Phone       string `dynamodbav:"phone"`
	Address     string `dynamodbav:"address"`
	ServiceType string `dynamodbav:"service_type"`

	PreferredDate  string `dynamodbav:"preferred_date,omitempty"`
	PreferredTime  string `dynamodbav:"preferred_time"`
	PaymentMethod  string `dynamodbav:"payment_method"`
	AdditionalInfo string `dynamodbav:"additional_info,omitempty"`

	Status          string         `dynamodbav:"status"`
	EstimatedAmount *float64       `dynamodbav:"estimated_amount,omitempty"`
	Analysis        *string        `dynamodbav:"analysis,omitempty"`
	Breakdown       *breakdownItem `dynamodbav:"breakdown,omitempty"`
	Images          []string       `dynamodbav:"images"`

	// Index key attributes cannot be empty strings.
	ConfirmationToken string `dynamodbav:"confirmation_token,omitempty"`
	PaymentStatus     string `dynamodbav:"payment_status,omitempty"`
	PaymentLink       string `dynamodbav:"payment_link,omitempty"`

	CreatedAt string `dynamodbav:"created_at"`
	UpdatedAt string `dynamodbav:"updated_at"`
}

type breakdownItem struct {
	LoadSize       string    `dynamodbav:"load_size"`
	BasePrice      float64   `dynamodbav:"base_price"`
	AdditionalFees []feeItem `dynamodbav:"additional_fees"`
	Total          float64   `dynamodbav:"total"`
}

type feeItem struct {
	Name   string  `dynamodbav:"name"`
	Amount float64 `dynamodbav:"amount"`
	Reason string  `dynamodbav:"reason"`
}

// EstimateDynamoRepository persists Estimate entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI confirmation_token-index on confirmation_token (string)
//
// Token lookups go through the GSI and are eventually consistent.
type EstimateDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IEstimateRepository = (*EstimateDynamoRepository)(nil)

func NewEstimateDynamoRepository(ddb dynamoAPI, tableName string) *EstimateDynamoRepository {
	if tableName == "" {
		tableName = getenvDefault("ESTIMATES_TABLE", defaultEstimatesTableName)
	}
	return &EstimateDynamoRepository{ddb: ddb, tableName: tableName}
}

func (r *EstimateDynamoRepository) Create(ctx context.Context, e entities.Estimate) (entities.Estimate, error) {
	it := toEstimateItem(e)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Estimate{}, err
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
		return entities.Estimate{}, err
	}
	return e, nil
}

func (r *EstimateDynamoRepository) GetByID(ctx context.Context, id string) (entities.Estimate, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Item) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func (r *EstimateDynamoRepository) GetByConfirmationToken(ctx context.Context, token string) (entities.Estimate, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(confirmationTokenIndex),
		KeyConditionExpression: aws.String("#token = :token"),
		ExpressionAttributeNames: map[string]string{
			"#token": "confirmation_token",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":token": &types.AttributeValueMemberS{Value: token},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Estimate{}, err
	}
	if len(out.Items) == 0 {
		return entities.Estimate{}, nil
	}

	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Estimate{}, err
	}

	// The index is eventually consistent; a token replaced moments ago can
	// still be indexed, so the base table decides.
	fresh, err := r.GetByID(ctx, it.ID)
	if err != nil {
		return entities.Estimate{}, err
	}
	if fresh.ConfirmationToken != token {
		return entities.Estimate{}, nil
	}
	return fresh, nil
}

// List scans the whole table; the result is sorted newest first.
func (r *EstimateDynamoRepository) List(ctx context.Context, filter entities.EstimateFilter) ([]entities.Estimate, error) {
	in := &dynamodb.ScanInput{TableName: aws.String(r.tableName)}
	if filter.Status != "" {
		in.FilterExpression = aws.String("#status = :status")
		in.ExpressionAttributeNames = map[string]string{"#status": "status"}
		in.ExpressionAttributeValues = map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(filter.Status)},
		}
	}

	out := []entities.Estimate{}
	for {
		page, err := r.ddb.Scan(ctx, in)
		if err != nil {
			return nil, err
		}
		var items []estimateItem
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &items); err != nil {
			return nil, err
		}
		for _, it := range items {
			out = append(out, fromEstimateItem(it))
		}
		if len(page.LastEvaluatedKey) == 0 {
			break
		}
		in.ExclusiveStartKey = page.LastEvaluatedKey
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *EstimateDynamoRepository) UpdateAmountByID(ctx context.Context, id string, amount float64, status entities.EstimateStatus) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #amount = :amount, #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":amount":     &types.AttributeValueMemberN{Value: floatToString(amount)},
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#amount":     "estimated_amount",
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) MarkSentByID(ctx context.Context, id string, token string) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #token = :token, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.EstimateStatusEstimateSent)},
			":token":      &types.AttributeValueMemberS{Value: token},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#token":      "confirmation_token",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) ConfirmByID(ctx context.Context, id string, c entities.EstimateConfirmation) (entities.Estimate, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #date = :date, #time = :time, #method = :method, #token = :token, #payment_status = :payment_status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":         &types.AttributeValueMemberS{Value: string(entities.EstimateStatusConfirmed)},
			":date":           &types.AttributeValueMemberS{Value: formatDate(c.PreferredDate)},
			":time":           &types.AttributeValueMemberS{Value: c.PreferredTime},
			":method":         &types.AttributeValueMemberS{Value: string(c.PaymentMethod)},
			":token":          &types.AttributeValueMemberS{Value: c.ConfirmationToken},
			":payment_status": &types.AttributeValueMemberS{Value: string(c.PaymentStatus)},
			":updated_at":     &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":         "status",
			"#date":           "preferred_date",
			"#time":           "preferred_time",
			"#method":         "payment_method",
			"#token":          "confirmation_token",
			"#payment_status": "payment_status",
			"#updated_at":     "updated_at",
			"#payment_link":   "payment_link",
		}
		if c.PaymentLink != "" {
			expr += ", #payment_link = :payment_link"
			vals[":payment_link"] = &types.AttributeValueMemberS{Value: c.PaymentLink}
		} else {
			expr += " REMOVE #payment_link"
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) AppendImagesByID(ctx context.Context, id string, images []string) (entities.Estimate, error) {
	list := make([]types.AttributeValue, 0, len(images))
	for _, img := range images {
		list = append(list, &types.AttributeValueMemberS{Value: img})
	}
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #images = list_append(if_not_exists(#images, :empty), :images), #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":images":     &types.AttributeValueMemberL{Value: list},
			":empty":      &types.AttributeValueMemberL{Value: []types.AttributeValue{}},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#images":     "images",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *EstimateDynamoRepository) DeleteByID(ctx context.Context, id string) (bool, error) {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (r *EstimateDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Estimate, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Estimate{}, nil
		}
		return entities.Estimate{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Estimate{}, nil
	}
	var it estimateItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Estimate{}, err
	}
	return fromEstimateItem(it), nil
}

func toEstimateItem(e entities.Estimate) estimateItem {
	images := e.Images
	if images == nil {
		images = []string{}
	}
	return estimateItem{
		ID:                e.ID,
		CustomerID:        e.CustomerID,
		Name:              e.Name,
		Email:             e.Email,
		Phone:             e.Phone,
		Address:           e.Address,
		ServiceType:       string(e.ServiceType),
		PreferredDate:     formatDate(e.PreferredDate),
		PreferredTime:     e.PreferredTime,
		PaymentMethod:     string(e.PaymentMethod),
		AdditionalInfo:    e.AdditionalInfo,
		Status:            string(e.Status),
		EstimatedAmount:   e.EstimatedAmount,
		Analysis:          e.Analysis,
		Breakdown:         toBreakdownItem(e.Breakdown),
		Images:            images,
		ConfirmationToken: e.ConfirmationToken,
		PaymentStatus:     string(e.PaymentStatus),
		PaymentLink:       e.PaymentLink,
		CreatedAt:         e.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:         e.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromEstimateItem(it estimateItem) entities.Estimate {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	images := it.Images
	if images == nil {
		images = []string{}
	}
	return entities.Estimate{
		ID:                it.ID,
		CustomerID:        it.CustomerID,
		Name:              it.Name,
		Email:             it.Email,
		Phone:             it.Phone,
		Address:           it.Address,
		ServiceType:       entities.ServiceType(it.ServiceType),
		PreferredDate:     parseDate(it.PreferredDate),
		PreferredTime:     it.PreferredTime,
		PaymentMethod:     entities.PaymentMethod(it.PaymentMethod),
		AdditionalInfo:    it.AdditionalInfo,
		Status:            entities.EstimateStatus(it.Status),
		EstimatedAmount:   it.EstimatedAmount,
		Analysis:          it.Analysis,
		Breakdown:         fromBreakdownItem(it.Breakdown),
		Images:            images,
		ConfirmationToken: it.ConfirmationToken,
		PaymentStatus:     entities.PaymentStatus(it.PaymentStatus),
		PaymentLink:       it.PaymentLink,
		CreatedAt:         createdAt,
		UpdatedAt:         updatedAt,
	}
}

func toBreakdownItem(b *entities.EstimateBreakdown) *breakdownItem {
	if b == nil {
		return nil
	}
	fees := make([]feeItem, 0, len(b.AdditionalFees))
	for _, f := range b.AdditionalFees {
		fees = append(fees, feeItem{Name: f.Name, Amount: f.Amount, Reason: f.Reason})
	}
	return &breakdownItem{LoadSize: b.LoadSize, BasePrice: b.BasePrice, AdditionalFees: fees, Total: b.Total}
}

func fromBreakdownItem(b *breakdownItem) *entities.EstimateBreakdown {
	if b == nil {
		return nil
	}
	fees := make([]entities.AdditionalFee, 0, len(b.AdditionalFees))
	for _, f := range b.AdditionalFees {
		fees = append(fees, entities.AdditionalFee{Name: f.Name, Amount: f.Amount, Reason: f.Reason})
	}
	return &entities.EstimateBreakdown{LoadSize: b.LoadSize, BasePrice: b.BasePrice, AdditionalFees: fees, Total: b.Total}
}

// Package awsv2 maps compiled read requests and table metadata between the
// neutral dynaquery types and the AWS SDK for Go v2.
package awsv2

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	dynamodbtypes "github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/aws/smithy-go"

	"github.com/tablescope/dynaquery/expression"
	"github.com/tablescope/dynaquery/request"
	"github.com/tablescope/dynaquery/schema"
)

// QueryInput builds the dynamodb.QueryInput for a query-kind request.
func QueryInput(req *request.Request) (*dynamodb.QueryInput, error) {
	if req.Kind != request.KindQuery {
		return nil, &smithy.GenericAPIError{Code: "ValidationException", Message: "request does not compile to a Query"}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(req.TableName),
		KeyConditionExpression:    aws.String(req.KeyConditionExpression),
		ExpressionAttributeNames:  req.Names,
		ExpressionAttributeValues: mapTypesToDynamoAttributeValues(req.Values),
	}

	if req.IndexName != "" {
		input.IndexName = aws.String(req.IndexName)
	}

	if req.FilterExpression != "" {
		input.FilterExpression = aws.String(req.FilterExpression)
	}

	return input, nil
}

// ScanInput builds the dynamodb.ScanInput for a scan-kind request.
func ScanInput(req *request.Request) (*dynamodb.ScanInput, error) {
	if req.Kind != request.KindScan {
		return nil, &smithy.GenericAPIError{Code: "ValidationException", Message: "request does not compile to a Scan"}
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(req.TableName),
		ExpressionAttributeNames:  req.Names,
		ExpressionAttributeValues: mapTypesToDynamoAttributeValues(req.Values),
	}

	if req.FilterExpression != "" {
		input.FilterExpression = aws.String(req.FilterExpression)
	}

	return input, nil
}

// AttributeValue maps a typed literal onto the v2 AttributeValue union. The
// literal kind picks the wire member directly: a number literal keeps its
// decimal text, a string stays a string no matter what it looks like.
func AttributeValue(lit expression.Literal) dynamodbtypes.AttributeValue {
	switch lit.Kind {
	case expression.KindNumber:
		return &dynamodbtypes.AttributeValueMemberN{Value: lit.Text}
	case expression.KindBoolean:
		return &dynamodbtypes.AttributeValueMemberBOOL{Value: lit.Bool}
	case expression.KindNull:
		return &dynamodbtypes.AttributeValueMemberNULL{Value: true}
	default:
		return &dynamodbtypes.AttributeValueMemberS{Value: lit.Text}
	}
}

func mapTypesToDynamoAttributeValues(values map[string]expression.Literal) map[string]dynamodbtypes.AttributeValue {
	if len(values) == 0 {
		return nil
	}

	output := map[string]dynamodbtypes.AttributeValue{}
	for alias, lit := range values {
		output[alias] = AttributeValue(lit)
	}

	return output
}

// ItemKey maps parsed key=value pairs onto an item key usable with GetItem.
func ItemKey(pairs map[string]expression.Literal) map[string]dynamodbtypes.AttributeValue {
	key := map[string]dynamodbtypes.AttributeValue{}
	for name, lit := range pairs {
		key[name] = AttributeValue(lit)
	}

	return key
}

// TableSchema extracts the key schema snapshot from a table description, as
// returned by DescribeTable.
func TableSchema(desc dynamodbtypes.TableDescription) schema.Table {
	attrTypes := map[string]schema.KeyType{}
	for _, def := range desc.AttributeDefinitions {
		attrTypes[aws.ToString(def.AttributeName)] = schema.KeyType(def.AttributeType)
	}

	table := schema.Table{Name: aws.ToString(desc.TableName)}
	table.HashKey, table.SortKey = keysFromSchema(desc.KeySchema, attrTypes)

	for _, gsi := range desc.GlobalSecondaryIndexes {
		idx := schema.SecondaryIndex{
			Name: aws.ToString(gsi.IndexName),
			Type: schema.IndexTypeGlobal,
		}
		idx.HashKey, idx.SortKey = keysFromSchema(gsi.KeySchema, attrTypes)

		table.GlobalSecondaryIndexes = append(table.GlobalSecondaryIndexes, idx)
	}

	for _, lsi := range desc.LocalSecondaryIndexes {
		idx := schema.SecondaryIndex{
			Name: aws.ToString(lsi.IndexName),
			Type: schema.IndexTypeLocal,
		}
		// an LSI shares the table's hash key
		idx.HashKey = table.HashKey
		_, idx.SortKey = keysFromSchema(lsi.KeySchema, attrTypes)

		table.LocalSecondaryIndexes = append(table.LocalSecondaryIndexes, idx)
	}

	return table
}

func keysFromSchema(elements []dynamodbtypes.KeySchemaElement, attrTypes map[string]schema.KeyType) (schema.Key, *schema.Key) {
	var hash schema.Key

	var sort *schema.Key

	for _, element := range elements {
		name := aws.ToString(element.AttributeName)
		key := schema.Key{Name: name, Type: attrTypes[name]}

		switch element.KeyType {
		case dynamodbtypes.KeyTypeHash:
			hash = key
		case dynamodbtypes.KeyTypeRange:
			sort = &key
		}
	}

	return hash, sort
}

// Package awsv1 maps compiled read requests and table metadata between the
// neutral dynaquery types and the AWS SDK for Go v1.
package awsv1

import (
	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"

	"github.com/tablescope/dynaquery/expression"
	"github.com/tablescope/dynaquery/request"
	"github.com/tablescope/dynaquery/schema"
)

// QueryInput builds the dynamodb.QueryInput for a query-kind request.
func QueryInput(req *request.Request) (*dynamodb.QueryInput, error) {
	if req.Kind != request.KindQuery {
		return nil, awserr.New("ValidationException", "request does not compile to a Query", nil)
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(req.TableName),
		KeyConditionExpression:    aws.String(req.KeyConditionExpression),
		ExpressionAttributeNames:  mapNames(req.Names),
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
		return nil, awserr.New("ValidationException", "request does not compile to a Scan", nil)
	}

	input := &dynamodb.ScanInput{
		TableName:                 aws.String(req.TableName),
		ExpressionAttributeNames:  mapNames(req.Names),
		ExpressionAttributeValues: mapTypesToDynamoAttributeValues(req.Values),
	}

	if req.FilterExpression != "" {
		input.FilterExpression = aws.String(req.FilterExpression)
	}

	return input, nil
}

// AttributeValue maps a typed literal onto the v1 AttributeValue struct.
func AttributeValue(lit expression.Literal) *dynamodb.AttributeValue {
	switch lit.Kind {
	case expression.KindNumber:
		return &dynamodb.AttributeValue{N: aws.String(lit.Text)}
	case expression.KindBoolean:
		return &dynamodb.AttributeValue{BOOL: aws.Bool(lit.Bool)}
	case expression.KindNull:
		return &dynamodb.AttributeValue{NULL: aws.Bool(true)}
	default:
		return &dynamodb.AttributeValue{S: aws.String(lit.Text)}
	}
}

func mapNames(names map[string]string) map[string]*string {
	if len(names) == 0 {
		return nil
	}

	output := map[string]*string{}
	for alias, name := range names {
		output[alias] = aws.String(name)
	}

	return output
}

func mapTypesToDynamoAttributeValues(values map[string]expression.Literal) map[string]*dynamodb.AttributeValue {
	if len(values) == 0 {
		return nil
	}

	output := map[string]*dynamodb.AttributeValue{}
	for alias, lit := range values {
		output[alias] = AttributeValue(lit)
	}

	return output
}

// TableSchema extracts the key schema snapshot from a v1 table description.
func TableSchema(desc *dynamodb.TableDescription) schema.Table {
	attrTypes := map[string]schema.KeyType{}
	for _, def := range desc.AttributeDefinitions {
		attrTypes[aws.StringValue(def.AttributeName)] = schema.KeyType(aws.StringValue(def.AttributeType))
	}

	table := schema.Table{Name: aws.StringValue(desc.TableName)}
	table.HashKey, table.SortKey = keysFromSchema(desc.KeySchema, attrTypes)

	for _, gsi := range desc.GlobalSecondaryIndexes {
		idx := schema.SecondaryIndex{
			Name: aws.StringValue(gsi.IndexName),
			Type: schema.IndexTypeGlobal,
		}
		idx.HashKey, idx.SortKey = keysFromSchema(gsi.KeySchema, attrTypes)

		table.GlobalSecondaryIndexes = append(table.GlobalSecondaryIndexes, idx)
	}

	for _, lsi := range desc.LocalSecondaryIndexes {
		idx := schema.SecondaryIndex{
			Name: aws.StringValue(lsi.IndexName),
			Type: schema.IndexTypeLocal,
		}
		// an LSI shares the table's hash key
		idx.HashKey = table.HashKey
		_, idx.SortKey = keysFromSchema(lsi.KeySchema, attrTypes)

		table.LocalSecondaryIndexes = append(table.LocalSecondaryIndexes, idx)
	}

	return table
}

func keysFromSchema(elements []*dynamodb.KeySchemaElement, attrTypes map[string]schema.KeyType) (schema.Key, *schema.Key) {
	var hash schema.Key

	var sort *schema.Key

	for _, element := range elements {
		name := aws.StringValue(element.AttributeName)
		key := schema.Key{Name: name, Type: attrTypes[name]}

		switch aws.StringValue(element.KeyType) {
		case dynamodb.KeyTypeHash:
			hash = key
		case dynamodb.KeyTypeRange:
			sort = &key
		}
	}

	return hash, sort
}

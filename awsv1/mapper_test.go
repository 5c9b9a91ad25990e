package awsv1

import (
	"testing"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/awserr"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/stretchr/testify/require"

	"github.com/tablescope/dynaquery/expression"
	"github.com/tablescope/dynaquery/request"
	"github.com/tablescope/dynaquery/schema"
)

func TestAttributeValue(t *testing.T) {
	c := require.New(t)

	c.Equal(&dynamodb.AttributeValue{S: aws.String("John")}, AttributeValue(expression.String("John")))
	c.Equal(&dynamodb.AttributeValue{N: aws.String("-7")}, AttributeValue(expression.Number("-7")))
	c.Equal(&dynamodb.AttributeValue{BOOL: aws.Bool(false)}, AttributeValue(expression.Boolean(false)))
	c.Equal(&dynamodb.AttributeValue{NULL: aws.Bool(true)}, AttributeValue(expression.Null()))
}

func TestQueryInput(t *testing.T) {
	c := require.New(t)

	req := &request.Request{
		TableName:              "orders",
		Kind:                   request.KindQuery,
		KeyConditionExpression: "#n0 = :v0 AND begins_with(#n1, :v1)",
		Names:                  map[string]string{"#n0": "PK", "#n1": "SK"},
		Values: map[string]expression.Literal{
			":v0": expression.String("USER#123"),
			":v1": expression.String("ORDER#"),
		},
	}

	input, err := QueryInput(req)
	c.NoError(err)
	c.Equal("orders", aws.StringValue(input.TableName))
	c.Nil(input.IndexName)
	c.Equal("#n0 = :v0 AND begins_with(#n1, :v1)", aws.StringValue(input.KeyConditionExpression))
	c.Equal("PK", aws.StringValue(input.ExpressionAttributeNames["#n0"]))
	c.Equal("USER#123", aws.StringValue(input.ExpressionAttributeValues[":v0"].S))

	_, err = ScanInput(req)
	c.Error(err)

	awsErr, ok := err.(awserr.Error)
	c.True(ok)
	c.Equal("ValidationException", awsErr.Code())
}

func TestScanInput(t *testing.T) {
	c := require.New(t)

	req := &request.Request{
		TableName:        "orders",
		Kind:             request.KindScan,
		FilterExpression: "#n0 = :v0",
		Names:            map[string]string{"#n0": "active"},
		Values:           map[string]expression.Literal{":v0": expression.Boolean(true)},
	}

	input, err := ScanInput(req)
	c.NoError(err)
	c.Equal("#n0 = :v0", aws.StringValue(input.FilterExpression))
	c.True(aws.BoolValue(input.ExpressionAttributeValues[":v0"].BOOL))

	_, err = QueryInput(req)
	c.Error(err)
}

func TestTableSchema(t *testing.T) {
	c := require.New(t)

	desc := &dynamodb.TableDescription{
		TableName: aws.String("orders"),
		AttributeDefinitions: []*dynamodb.AttributeDefinition{
			{AttributeName: aws.String("PK"), AttributeType: aws.String(dynamodb.ScalarAttributeTypeS)},
			{AttributeName: aws.String("updated_at"), AttributeType: aws.String(dynamodb.ScalarAttributeTypeN)},
		},
		KeySchema: []*dynamodb.KeySchemaElement{
			{AttributeName: aws.String("PK"), KeyType: aws.String(dynamodb.KeyTypeHash)},
		},
		GlobalSecondaryIndexes: []*dynamodb.GlobalSecondaryIndexDescription{
			{
				IndexName: aws.String("updated-index"),
				KeySchema: []*dynamodb.KeySchemaElement{
					{AttributeName: aws.String("updated_at"), KeyType: aws.String(dynamodb.KeyTypeHash)},
				},
			},
		},
	}

	table := TableSchema(desc)

	c.Equal("orders", table.Name)
	c.Equal(schema.Key{Name: "PK", Type: schema.KeyTypeString}, table.HashKey)
	c.Nil(table.SortKey)
	c.Len(table.GlobalSecondaryIndexes, 1)
	c.Equal(schema.Key{Name: "updated_at", Type: schema.KeyTypeNumber}, table.GlobalSecondaryIndexes[0].HashKey)
}

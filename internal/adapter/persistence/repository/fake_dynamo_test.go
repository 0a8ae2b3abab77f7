package repository

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
)

// fakeDynamo records the last input of each call and replays canned outputs.
type fakeDynamo struct {
	getOut   *dynamodb.GetItemOutput
	getErr   error
	putErr   error
	updOut   *dynamodb.UpdateItemOutput
	updErr   error
	queryOut []*dynamodb.QueryOutput
	batchOut []*dynamodb.BatchGetItemOutput
	txErr    error

	getIn    *dynamodb.GetItemInput
	putIn    *dynamodb.PutItemInput
	updIn    *dynamodb.UpdateItemInput
	queryIn  []*dynamodb.QueryInput
	batchIn  []*dynamodb.BatchGetItemInput
	txIn     *dynamodb.TransactWriteItemsInput
	getCalls int
}

var _ DynamoAPI = (*fakeDynamo)(nil)

func (f *fakeDynamo) GetItem(_ context.Context, in *dynamodb.GetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error) {
	f.getIn = in
	f.getCalls++
	if f.getOut == nil {
		return &dynamodb.GetItemOutput{}, f.getErr
	}
	return f.getOut, f.getErr
}

func (f *fakeDynamo) PutItem(_ context.Context, in *dynamodb.PutItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error) {
	f.putIn = in
	return &dynamodb.PutItemOutput{}, f.putErr
}

func (f *fakeDynamo) UpdateItem(_ context.Context, in *dynamodb.UpdateItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error) {
	f.updIn = in
	if f.updOut == nil {
		return &dynamodb.UpdateItemOutput{}, f.updErr
	}
	return f.updOut, f.updErr
}

func (f *fakeDynamo) Query(_ context.Context, in *dynamodb.QueryInput, _ ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error) {
	f.queryIn = append(f.queryIn, in)
	if len(f.queryOut) == 0 {
		return &dynamodb.QueryOutput{}, nil
	}
	out := f.queryOut[0]
	f.queryOut = f.queryOut[1:]
	return out, nil
}

func (f *fakeDynamo) BatchGetItem(_ context.Context, in *dynamodb.BatchGetItemInput, _ ...func(*dynamodb.Options)) (*dynamodb.BatchGetItemOutput, error) {
	f.batchIn = append(f.batchIn, in)
	if len(f.batchOut) == 0 {
		return &dynamodb.BatchGetItemOutput{}, nil
	}
	out := f.batchOut[0]
	f.batchOut = f.batchOut[1:]
	return out, nil
}

func (f *fakeDynamo) TransactWriteItems(_ context.Context, in *dynamodb.TransactWriteItemsInput, _ ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error) {
	f.txIn = in
	return &dynamodb.TransactWriteItemsOutput{}, f.txErr
}

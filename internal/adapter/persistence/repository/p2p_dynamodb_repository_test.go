package repository

import (
	"context"
	"testing"
	"time"

	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func marshalP2P(t *testing.T, p entities.P2P) map[string]types.AttributeValue {
	t.Helper()
	av, err := attributevalue.MarshalMap(toP2PItem(p))
	require.NoError(t, err)
	return av
}

func TestP2PDynamoRepository_AssignPoint(t *testing.T) {
	t.Run("conditions on empty slot", func(t *testing.T) {
		ddb := &fakeDynamo{updOut: &dynamodb.UpdateItemOutput{
			Attributes: marshalP2P(t, entities.P2P{ID: 1, Estado: entities.EstadoP2PProceso, Punto2: 11}),
		}}
		repo := NewP2PDynamoRepository(ddb, "p2p")

		p, err := repo.AssignPoint(context.Background(), 1, 2, 11)
		require.NoError(t, err)
		assert.Equal(t, int64(11), p.Punto2)

		assert.Equal(t, "punto2", ddb.updIn.ExpressionAttributeNames["#slot"])
		assert.Equal(t, "id", ddb.updIn.ExpressionAttributeNames["#id"])
		assert.Equal(t, "punto1", ddb.updIn.ExpressionAttributeNames["#other"])
		assert.Equal(t, "attribute_exists(#id) AND #estado = :proceso AND #slot = :zero AND #other <> :viabilidad", aws.ToString(ddb.updIn.ConditionExpression))
		assert.Equal(t, &types.AttributeValueMemberN{Value: "11"}, ddb.updIn.ExpressionAttributeValues[":viabilidad"])
	})

	t.Run("slot taken concurrently", func(t *testing.T) {
		ddb := &fakeDynamo{updErr: &types.ConditionalCheckFailedException{}}
		repo := NewP2PDynamoRepository(ddb, "p2p")

		_, err := repo.AssignPoint(context.Background(), 1, 1, 10)
		assert.ErrorIs(t, err, interfaces.ErrConditionFailed)
	})

	t.Run("invalid slot never reaches dynamo", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewP2PDynamoRepository(ddb, "p2p")

		_, err := repo.AssignPoint(context.Background(), 1, 3, 10)
		assert.Error(t, err)
		assert.Nil(t, ddb.updIn)
	})
}

func TestP2PDynamoRepository_UpdateEstado(t *testing.T) {
	at := time.Date(2024, 3, 15, 9, 0, 0, 0, time.UTC)

	t.Run("approve requires both points", func(t *testing.T) {
		ddb := &fakeDynamo{updOut: &dynamodb.UpdateItemOutput{
			Attributes: marshalP2P(t, entities.P2P{ID: 1, Estado: entities.EstadoP2PAprobado, FechaAprobacion: &at}),
		}}
		repo := NewP2PDynamoRepository(ddb, "p2p")

		p, err := repo.UpdateEstado(context.Background(), 1, entities.P2PStateChange{
			From: entities.EstadoP2PProceso,
			To:   entities.EstadoP2PAprobado,
			At:   at,
		})
		require.NoError(t, err)
		require.NotNil(t, p.FechaAprobacion)
		assert.True(t, p.FechaAprobacion.Equal(at))

		cond := aws.ToString(ddb.updIn.ConditionExpression)
		assert.Contains(t, cond, "#punto1 <> :zero AND #punto2 <> :zero AND #punto1 <> #punto2")
		assert.Equal(t, "fecha_aprobacion", ddb.updIn.ExpressionAttributeNames["#fecha"])
	})

	t.Run("cancel stores motivo", func(t *testing.T) {
		ddb := &fakeDynamo{}
		repo := NewP2PDynamoRepository(ddb, "p2p")

		_, err := repo.UpdateEstado(context.Background(), 1, entities.P2PStateChange{
			From:   entities.EstadoP2PAprobado,
			To:     entities.EstadoP2PCancelado,
			Motivo: "ruta alterna",
			At:     at,
		})
		require.NoError(t, err)
		assert.Equal(t, "fecha_cancelacion", ddb.updIn.ExpressionAttributeNames["#fecha"])
		assert.Equal(t, &types.AttributeValueMemberS{Value: "ruta alterna"}, ddb.updIn.ExpressionAttributeValues[":motivo"])
		assert.NotContains(t, aws.ToString(ddb.updIn.ConditionExpression), "#punto1")
	})
}

func TestP2PDynamoRepository_ListByEstado(t *testing.T) {
	ddb := &fakeDynamo{queryOut: []*dynamodb.QueryOutput{{
		Items: []map[string]types.AttributeValue{
			marshalP2P(t, entities.P2P{ID: 4, Estado: entities.EstadoP2PProceso}),
			marshalP2P(t, entities.P2P{ID: 2, Estado: entities.EstadoP2PProceso}),
		},
	}}}
	repo := NewP2PDynamoRepository(ddb, "p2p")

	out, err := repo.ListByEstado(context.Background(), entities.EstadoP2PProceso)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, int64(2), out[0].ID)
	assert.Equal(t, p2pEstadoIndex, aws.ToString(ddb.queryIn[0].IndexName))
	assert.Equal(t, &types.AttributeValueMemberS{Value: "proceso"}, ddb.queryIn[0].ExpressionAttributeValues[":estado"])
}

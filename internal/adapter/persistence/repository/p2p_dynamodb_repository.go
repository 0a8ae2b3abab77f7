package repository

import (
	"context"
	"fmt"
	"sort"

	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultP2PTableName = "p2p"
	p2pEstadoIndex      = "estado-index"
)

type p2pItem struct {
	ID                int64  `dynamodbav:"id"`
	Tipo              string `dynamodbav:"tipo_p2p"`
	Estado            string `dynamodbav:"estado"`
	Punto1            int64  `dynamodbav:"punto1"`
	Punto2            int64  `dynamodbav:"punto2"`
	FechaCreacion     string `dynamodbav:"fecha_creacion"`
	FechaAprobacion   string `dynamodbav:"fecha_aprobacion,omitempty"`
	FechaCompletado   string `dynamodbav:"fecha_completado,omitempty"`
	FechaCancelacion  string `dynamodbav:"fecha_cancelacion,omitempty"`
	MotivoCancelacion string `dynamodbav:"motivo_cancelacion,omitempty"`
	UpdatedAt         string `dynamodbav:"updated_at"`
}

// P2PDynamoRepository persists P2P pairings in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//   - GSI: estado-index (PK: estado)
//
// Only viability ids are stored in the slots; names and order ids are joined
// on read.

type P2PDynamoRepository struct {
	ddb       DynamoAPI
	tableName string
}

var _ interfaces.IP2PRepository = (*P2PDynamoRepository)(nil)

func NewP2PDynamoRepository(ddb DynamoAPI, table string) *P2PDynamoRepository {
	return &P2PDynamoRepository{
		ddb:       ddb,
		tableName: tableName(table, "P2P_TABLE", defaultP2PTableName),
	}
}

func (r *P2PDynamoRepository) Create(ctx context.Context, p entities.P2P) (entities.P2P, error) {
	av, err := attributevalue.MarshalMap(toP2PItem(p))
	if err != nil {
		return entities.P2P{}, err
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
		return entities.P2P{}, conditionFailed(err)
	}
	return p, nil
}

func (r *P2PDynamoRepository) GetByID(ctx context.Context, id int64) (entities.P2P, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            numberKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.P2P{}, err
	}
	if len(out.Item) == 0 {
		return entities.P2P{}, nil
	}

	var it p2pItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.P2P{}, err
	}
	return fromP2PItem(it), nil
}

func (r *P2PDynamoRepository) ListByEstado(ctx context.Context, estado entities.EstadoP2P) ([]entities.P2P, error) {
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(p2pEstadoIndex),
		KeyConditionExpression: aws.String("#estado = :estado"),
		ExpressionAttributeNames: map[string]string{
			"#estado": "estado",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":estado": stringValue(string(estado)),
		},
	})

	items := make([]entities.P2P, 0)
	for p.HasMorePages() {
		out, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it p2pItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			items = append(items, fromP2PItem(it))
		}
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ID < items[j].ID })
	return items, nil
}

// AssignPoint fills one slot. The condition makes two operators racing for
// the same slot resolve to exactly one winner, and keeps a viability out of
// the slot opposite the one it already holds.
func (r *P2PDynamoRepository) AssignPoint(ctx context.Context, id int64, slot int, viabilidadID int64) (entities.P2P, error) {
	if slot != 1 && slot != 2 {
		return entities.P2P{}, fmt.Errorf("invalid p2p slot %d", slot)
	}
	return r.update(ctx, id, func(now string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #slot = :viabilidad, #updated_at = :now"
		cond := "#estado = :proceso AND #slot = :zero AND #other <> :viabilidad"
		vals := map[string]types.AttributeValue{
			":viabilidad": intValue(viabilidadID),
			":proceso":    stringValue(string(entities.EstadoP2PProceso)),
			":zero":       intValue(0),
			":now":        stringValue(now),
		}
		names := map[string]string{
			"#slot":       fmt.Sprintf("punto%d", slot),
			"#other":      fmt.Sprintf("punto%d", 3-slot),
			"#estado":     "estado",
			"#updated_at": "updated_at",
		}
		return expr, cond, vals, names
	})
}

func (r *P2PDynamoRepository) UpdateEstado(ctx context.Context, id int64, change entities.P2PStateChange) (entities.P2P, error) {
	at := formatTime(change.At)
	return r.update(ctx, id, func(string) (string, string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #estado = :to, #updated_at = :now"
		cond := "#estado = :from"
		vals := map[string]types.AttributeValue{
			":to":   stringValue(string(change.To)),
			":from": stringValue(string(change.From)),
			":now":  stringValue(at),
		}
		names := map[string]string{
			"#estado":     "estado",
			"#updated_at": "updated_at",
		}

		switch change.To {
		case entities.EstadoP2PAprobado:
			expr += ", #fecha = :now"
			names["#fecha"] = "fecha_aprobacion"
			cond += " AND #punto1 <> :zero AND #punto2 <> :zero AND #punto1 <> #punto2"
			names["#punto1"] = "punto1"
			names["#punto2"] = "punto2"
			vals[":zero"] = intValue(0)
		case entities.EstadoP2PCompletado:
			expr += ", #fecha = :now"
			names["#fecha"] = "fecha_completado"
		case entities.EstadoP2PCancelado:
			expr += ", #fecha = :now, #motivo = :motivo"
			names["#fecha"] = "fecha_cancelacion"
			names["#motivo"] = "motivo_cancelacion"
			vals[":motivo"] = stringValue(change.Motivo)
		}
		return expr, cond, vals, names
	})
}

func (r *P2PDynamoRepository) update(
	ctx context.Context,
	id int64,
	build func(now string) (updateExpr, condExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.P2P, error) {
	updateExpr, condExpr, values, names := build(formatTime(nowUTC()))

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       numberKey(id),
		ConditionExpression:       aws.String("attribute_exists(#id) AND " + condExpr),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		return entities.P2P{}, conditionFailed(err)
	}
	if len(out.Attributes) == 0 {
		return entities.P2P{}, nil
	}
	var it p2pItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.P2P{}, err
	}
	return fromP2PItem(it), nil
}

func toP2PItem(p entities.P2P) p2pItem {
	return p2pItem{
		ID:                p.ID,
		Tipo:              string(p.Tipo),
		Estado:            string(p.Estado),
		Punto1:            p.Punto1,
		Punto2:            p.Punto2,
		FechaCreacion:     formatTime(p.FechaCreacion),
		FechaAprobacion:   formatTimePtr(p.FechaAprobacion),
		FechaCompletado:   formatTimePtr(p.FechaCompletado),
		FechaCancelacion:  formatTimePtr(p.FechaCancelacion),
		MotivoCancelacion: p.MotivoCancelacion,
		UpdatedAt:         formatTime(p.UpdatedAt),
	}
}

func fromP2PItem(it p2pItem) entities.P2P {
	return entities.P2P{
		ID:                it.ID,
		Tipo:              entities.TipoP2P(it.Tipo),
		Estado:            entities.EstadoP2P(it.Estado),
		Punto1:            it.Punto1,
		Punto2:            it.Punto2,
		FechaCreacion:     parseTime(it.FechaCreacion),
		FechaAprobacion:   parseTimePtr(it.FechaAprobacion),
		FechaCompletado:   parseTimePtr(it.FechaCompletado),
		FechaCancelacion:  parseTimePtr(it.FechaCancelacion),
		MotivoCancelacion: it.MotivoCancelacion,
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}

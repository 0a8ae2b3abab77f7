package repository

import (
	"context"
	"errors"
	"time"

	"fibra_provisioning/internal/domain/entities"
	"fibra_provisioning/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultEnlacesTableName = "enlaces"

type sitioItem struct {
	Punto puntoItem `dynamodbav:"punto"`
	Lado  ladoItem  `dynamodbav:"lado"`
}

type enlaceItem struct {
	ID                  int64     `dynamodbav:"id"`
	IDViabilidad        int64     `dynamodbav:"id_viabilidad"`
	IDOrdenServicio     int64     `dynamodbav:"id_orden_servicio"`
	IDCliente           int64     `dynamodbav:"id_cliente"`
	IDCarrier           int64     `dynamodbav:"id_carrier"`
	IDTipoConexion      int64     `dynamodbav:"id_tipo_conexion"`
	IDTipoEnlace        int64     `dynamodbav:"id_tipo_enlace"`
	SitioA              sitioItem `dynamodbav:"sitio_a"`
	SitioZ              sitioItem `dynamodbav:"sitio_z"`
	MRCVenta            float64   `dynamodbav:"mrc_venta"`
	MRCCosto            float64   `dynamodbav:"mrc_costo"`
	NRCVenta            float64   `dynamodbav:"nrc_venta"`
	NRCCosto            float64   `dynamodbav:"nrc_costo"`
	DescripcionServicio string    `dynamodbav:"descripcion_servicio"`
	FechaActivacion     string    `dynamodbav:"fecha_activacion"`
	MesFacturacion      int       `dynamodbav:"mes_facturacion"`
	AnioFacturacion     int       `dynamodbav:"anio_facturacion"`
	Estado              bool      `dynamodbav:"estado"`
	FechaCreacion       string    `dynamodbav:"fecha_creacion"`
	FechaDesactivacion  string    `dynamodbav:"fecha_desactivacion,omitempty"`
}

// EnlaceDynamoRepository persists activated circuits in DynamoDB.
//
// Table requirements:
//   - PK: id (number)
//
// Activation writes the circuit and completes the order in one
// TransactWriteItems call; either both land or neither does. The order
// must still carry the updated_at the snapshot was taken from.

type EnlaceDynamoRepository struct {
	ddb          DynamoAPI
	tableName    string
	ordenesTable string
}

var _ interfaces.IEnlaceRepository = (*EnlaceDynamoRepository)(nil)

func NewEnlaceDynamoRepository(ddb DynamoAPI, table, ordenesTable string) *EnlaceDynamoRepository {
	return &EnlaceDynamoRepository{
		ddb:          ddb,
		tableName:    tableName(table, "ENLACES_TABLE", defaultEnlacesTableName),
		ordenesTable: tableName(ordenesTable, "SERVICE_ORDERS_TABLE", defaultOrdenesTableName),
	}
}

func (r *EnlaceDynamoRepository) Activate(ctx context.Context, e entities.Enlace, prevUpdatedAt time.Time) (entities.Enlace, error) {
	av, err := attributevalue.MarshalMap(toEnlaceItem(e))
	if err != nil {
		return entities.Enlace{}, err
	}
	now := formatTime(e.FechaCreacion)

	_, err = r.ddb.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:           aws.String(r.tableName),
					Item:                av,
					ConditionExpression: aws.String("attribute_not_exists(#id)"),
					ExpressionAttributeNames: map[string]string{
						"#id": "id",
					},
				},
			},
			{
				Update: &types.Update{
					TableName:           aws.String(r.ordenesTable),
					Key:                 numberKey(e.IDOrdenServicio),
					UpdateExpression:    aws.String("SET #estado = :completado, #fecha_activacion = :activacion, #fecha_completado = :now, #updated_at = :now"),
					ConditionExpression: aws.String("attribute_exists(#id) AND #estado = :en_proceso AND #updated_at = :prev"),
					ExpressionAttributeNames: map[string]string{
						"#id":               "id",
						"#estado":           "estado",
						"#fecha_activacion": "fecha_activacion",
						"#fecha_completado": "fecha_completado",
						"#updated_at":       "updated_at",
					},
					ExpressionAttributeValues: map[string]types.AttributeValue{
						":completado": intValue(int64(entities.EstadoOrdenCompletado)),
						":en_proceso": intValue(int64(entities.EstadoOrdenEnProceso)),
						":activacion": stringValue(formatTime(e.FechaActivacion)),
						":now":        stringValue(now),
						":prev":       stringValue(formatTime(prevUpdatedAt)),
					},
				},
			},
		},
	})
	if err != nil {
		return entities.Enlace{}, conditionFailed(err)
	}
	return e, nil
}

func (r *EnlaceDynamoRepository) GetByID(ctx context.Context, id int64) (entities.Enlace, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(r.tableName),
		Key:            numberKey(id),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Enlace{}, err
	}
	if len(out.Item) == 0 {
		return entities.Enlace{}, nil
	}

	var it enlaceItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Enlace{}, err
	}
	return fromEnlaceItem(it), nil
}

// Deactivate clears the active flag. A record that is already inactive is
// returned as stored.
func (r *EnlaceDynamoRepository) Deactivate(ctx context.Context, id int64) (entities.Enlace, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(r.tableName),
		Key:                 numberKey(id),
		ConditionExpression: aws.String("attribute_exists(#id) AND #estado = :true"),
		UpdateExpression:    aws.String("SET #estado = :false, #fecha = :now"),
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#estado": "estado",
			"#fecha":  "fecha_desactivacion",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":true":  boolValue(true),
			":false": boolValue(false),
			":now":   stringValue(formatTime(nowUTC())),
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		if errors.Is(conditionFailed(err), interfaces.ErrConditionFailed) {
			return r.GetByID(ctx, id)
		}
		return entities.Enlace{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Enlace{}, nil
	}
	var it enlaceItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Enlace{}, err
	}
	return fromEnlaceItem(it), nil
}

func toEnlaceItem(e entities.Enlace) enlaceItem {
	return enlaceItem{
		ID:                  e.ID,
		IDViabilidad:        e.IDViabilidad,
		IDOrdenServicio:     e.IDOrdenServicio,
		IDCliente:           e.IDCliente,
		IDCarrier:           e.IDCarrier,
		IDTipoConexion:      e.IDTipoConexion,
		IDTipoEnlace:        e.IDTipoEnlace,
		SitioA:              sitioItem{Punto: toPuntoItem(e.SitioA.Punto), Lado: toLadoItem(e.SitioA.Lado)},
		SitioZ:              sitioItem{Punto: toPuntoItem(e.SitioZ.Punto), Lado: toLadoItem(e.SitioZ.Lado)},
		MRCVenta:            e.MRCVenta,
		MRCCosto:            e.MRCCosto,
		NRCVenta:            e.NRCVenta,
		NRCCosto:            e.NRCCosto,
		DescripcionServicio: e.DescripcionServicio,
		FechaActivacion:     formatTime(e.FechaActivacion),
		MesFacturacion:      e.MesFacturacion,
		AnioFacturacion:     e.AnioFacturacion,
		Estado:              e.Estado,
		FechaCreacion:       formatTime(e.FechaCreacion),
		FechaDesactivacion:  formatTimePtr(e.FechaDesactivacion),
	}
}

func fromEnlaceItem(it enlaceItem) entities.Enlace {
	return entities.Enlace{
		ID:                  it.ID,
		IDViabilidad:        it.IDViabilidad,
		IDOrdenServicio:     it.IDOrdenServicio,
		IDCliente:           it.IDCliente,
		IDCarrier:           it.IDCarrier,
		IDTipoConexion:      it.IDTipoConexion,
		IDTipoEnlace:        it.IDTipoEnlace,
		SitioA:              entities.SitioEnlace{Punto: fromPuntoItem(it.SitioA.Punto), Lado: fromLadoItem(it.SitioA.Lado)},
		SitioZ:              entities.SitioEnlace{Punto: fromPuntoItem(it.SitioZ.Punto), Lado: fromLadoItem(it.SitioZ.Lado)},
		MRCVenta:            it.MRCVenta,
		MRCCosto:            it.MRCCosto,
		NRCVenta:            it.NRCVenta,
		NRCCosto:            it.NRCCosto,
		DescripcionServicio: it.DescripcionServicio,
		FechaActivacion:     parseTime(it.FechaActivacion),
		MesFacturacion:      it.MesFacturacion,
		AnioFacturacion:     it.AnioFacturacion,
		Estado:              it.Estado,
		FechaCreacion:       parseTime(it.FechaCreacion),
		FechaDesactivacion:  parseTimePtr(it.FechaDesactivacion),
	}
}

package request

import (
	"encoding/json"
	"testing"

	"fibra_provisioning/internal/domain/entities"
)

func TestCreateViabilityRequest_ToCommand(t *testing.T) {
	lat := 19.43
	r := CreateViabilityRequest{
		Nombre:          "Torre Norte",
		NumeroDocumento: "VB-001",
		PuntoA:          PuntoRequest{IDAreaDesarrollo: 1, IDUbicacion: 2, IDModulo: 3, Latitud: &lat},
		IDEmpresa:       10,
		IDTipoEnlace:    2,
		MRC:             1500,
	}

	cmd := r.ToCommand()
	if cmd.Nombre != "Torre Norte" || cmd.NumeroDocumento != "VB-001" || cmd.IDEmpresa != 10 || cmd.IDTipoEnlace != 2 {
		t.Fatalf("unexpected command: %+v", cmd)
	}
	if cmd.PuntoA.Latitud == nil || *cmd.PuntoA.Latitud != lat || cmd.PuntoA.Longitud != nil {
		t.Fatalf("coordinates not carried: %+v", cmd.PuntoA)
	}
	if cmd.MRC != 1500 {
		t.Fatalf("unexpected mrc: %v", cmd.MRC)
	}
}

func TestViabilityListQuery_Filter(t *testing.T) {
	q := ViabilityListQuery{State: 3, Empresa: 10, TipoEnlace: 2, SinOrden: true}
	f := q.Filter()
	if f.IDEmpresa != 10 || f.IDTipoEnlace != 2 || !f.SinOrden || f.IncluirCanceladas {
		t.Fatalf("unexpected filter: %+v", f)
	}
}

func TestTransitionViabilityRequest_ResolveTarget(t *testing.T) {
	r := TransitionViabilityRequest{Target: "Cancelada"}
	if r.ResolveTarget() != entities.TargetCancelada {
		t.Fatalf("unexpected target: %v", r.ResolveTarget())
	}
}

func TestEditServiceOrderRequest_ToPatch(t *testing.T) {
	var r EditServiceOrderRequest
	if err := json.Unmarshal([]byte(`{"mrc_venta":0,"lado_z":{"puerto":"P-4","distancia":12.5}}`), &r); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	p := r.ToPatch()
	if p.MRCVenta == nil || *p.MRCVenta != 0 {
		t.Fatalf("explicit zero must be kept: %+v", p)
	}
	if p.LadoA != nil {
		t.Fatalf("omitted side must stay nil")
	}
	if p.LadoZ == nil || p.LadoZ.Puerto == nil || *p.LadoZ.Puerto != "P-4" {
		t.Fatalf("unexpected lado_z: %+v", p.LadoZ)
	}
	if p.LadoZ.Distancia == nil || *p.LadoZ.Distancia != 12.5 {
		t.Fatalf("unexpected lado_z distancia: %+v", p.LadoZ)
	}
	if p.LadoZ.IDODF != nil || p.LadoZ.FTP != nil || p.LadoZ.CID != nil {
		t.Fatalf("omitted side fields must stay nil: %+v", p.LadoZ)
	}
	if p.NRCVenta != nil || p.DescripcionServicio != nil {
		t.Fatalf("omitted fields must stay nil: %+v", p)
	}
}

func TestEditServiceOrderRequest_EmptyPatch(t *testing.T) {
	if !(EditServiceOrderRequest{}).ToPatch().IsEmpty() {
		t.Fatalf("expected empty patch")
	}
}

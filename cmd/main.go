package main

import (
	"net/http"
	"os"

	"github.com/VianaAdvocacia/api-escritorio/internal/auth"
	"github.com/VianaAdvocacia/api-escritorio/internal/captador"
	"github.com/VianaAdvocacia/api-escritorio/internal/cliente"
	"github.com/VianaAdvocacia/api-escritorio/internal/despesa"
	"github.com/VianaAdvocacia/api-escritorio/internal/financeiro"
	"github.com/VianaAdvocacia/api-escritorio/internal/historico"
	"github.com/VianaAdvocacia/api-escritorio/internal/notificacao"
	"github.com/VianaAdvocacia/api-escritorio/internal/parcela"
	"github.com/VianaAdvocacia/api-escritorio/internal/processo"
	"github.com/VianaAdvocacia/api-escritorio/internal/recibo"
	"github.com/VianaAdvocacia/api-escritorio/internal/relatorio"
	"github.com/VianaAdvocacia/api-escritorio/internal/saldo"
	"github.com/VianaAdvocacia/api-escritorio/internal/usuario"
	"github.com/VianaAdvocacia/api-escritorio/internal/utils"
	"github.com/VianaAdvocacia/api-escritorio/internal/utils/db"
	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"
)

func migrarTudo(conexao *gorm.DB) error {
	for _, migrar := range []func(*gorm.DB) error{
		usuario.Migrate,
		cliente.Migrate,
		captador.Migrate,
		processo.Migrate,
		parcela.Migrate,
		financeiro.Migrate,
		despesa.Migrate,
		saldo.Migrate,
		recibo.Migrate,
		historico.Migrate,
	} {
		if err := migrar(conexao); err != nil {
			return err
		}
	}
	return nil
}

func main() {
	_ = godotenv.Load()
	logg := utils.GetLogger()

	conexao, err := db.GetDB()
	if err != nil {
		logg.WithError(err).Fatal("erro ao conectar no banco")
	}

	if err := migrarTudo(conexao); err != nil {
		logg.WithError(err).Fatal("erro no AutoMigrate")
	}

	// Repositórios
	clienteRepo := cliente.NewRepository(conexao)
	despesaRepo := despesa.NewRepository(conexao)
	saldoRepo := saldo.NewRepository(conexao)
	financeiroRepo := financeiro.NewRepository(conexao)
	processoRepo := processo.NewRepository(conexao)
	parcelaRepo := parcela.NewRepository(conexao)
	reciboRepo := recibo.NewRepository(conexao)
	historicoRepo := historico.NewRepository(conexao)

	// Serviços e motores
	engine := saldo.NewEngine(saldoRepo, despesaRepo)
	financeiroSrv := financeiro.NewServico(financeiroRepo, clienteRepo)
	honorariosSrv := processo.NewServicoHonorarios(processoRepo, &financeiro.LedgerProcessos{Repo: financeiroRepo})
	scheduler := parcela.NewScheduler(&processo.FonteBeneficio{Repo: processoRepo}, parcelaRepo)
	reciboSrv := recibo.NewServico(conexao, reciboRepo, financeiroRepo)
	registrador := historico.NewRegistrador(historicoRepo, logg)
	notificador := notificacao.NewNotificador(os.Getenv("WEBHOOK_PARCELAS_URL"), logg)
	avisos := &processo.FonteAvisos{Repo: processoRepo, Clientes: clienteRepo}

	// Handlers
	usuarioHandler := usuario.NewHandler(conexao)
	clienteHandler := cliente.NewHandler(conexao)
	captadorHandler := captador.NewHandler(conexao)
	despesaHandler := despesa.NewHandler(despesaRepo, engine)
	saldoHandler := saldo.NewHandler(conexao)
	financeiroHandler := financeiro.NewHandler(financeiroRepo, financeiroSrv, registrador)
	processoHandler := processo.NewHandler(processoRepo, honorariosSrv, registrador)
	parcelaHandler := parcela.NewHandler(parcelaRepo, scheduler, notificador, avisos, registrador)
	reciboHandler := recibo.NewHandler(reciboRepo, reciboSrv)
	relatorioHandler := relatorio.NewHandler(despesaRepo)
	historicoHandler := historico.NewHandler(historicoRepo)

	r := mux.NewRouter()

	// Rota pública
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")

	// Rotas autenticadas
	api := r.NewRoute().Subrouter()
	api.Use(auth.MiddlewareAutenticacao)

	// Usuários
	api.HandleFunc("/usuarios", usuarioHandler.Listar).Methods("GET")
	api.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")

	// Clientes
	api.HandleFunc("/clientes", clienteHandler.Criar).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.Deletar).Methods("DELETE")

	// Captadores
	api.HandleFunc("/captadores", captadorHandler.Criar).Methods("POST")
	api.HandleFunc("/captadores", captadorHandler.Listar).Methods("GET")
	api.HandleFunc("/captadores/{id}", captadorHandler.Deletar).Methods("DELETE")

	// Processos
	api.HandleFunc("/processos", processoHandler.Criar).Methods("POST")
	api.HandleFunc("/processos", processoHandler.Listar).Methods("GET")
	api.HandleFunc("/processos/{id}", processoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/processos/{id}", processoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/processos/{id}", processoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/processos/{id}/honorarios", processoHandler.MarcarHonorariosPagos).Methods("PUT")
	api.HandleFunc("/processos/{id}/status-pagamento", processoHandler.AtualizarStatusPagamento).Methods("PUT")
	api.HandleFunc("/processos/{id}/historico", historicoHandler.ListarPorProcesso).Methods("GET")

	// Parcelas
	api.HandleFunc("/processos/{id}/parcelas", parcelaHandler.Gerar).Methods("POST")
	api.HandleFunc("/processos/{id}/parcelas", parcelaHandler.ListarPorProcesso).Methods("GET")
	api.HandleFunc("/parcelas/vencendo", parcelaHandler.ListarVencendo).Methods("GET")
	api.HandleFunc("/parcelas/{id}", parcelaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/parcelas/{id}/pagamento", parcelaHandler.AlternarPagamento).Methods("PUT")
	api.HandleFunc("/parcelas/{id}/notificar", parcelaHandler.Notificar).Methods("POST")

	// Razão financeiro
	api.HandleFunc("/financeiro", financeiroHandler.Criar).Methods("POST")
	api.HandleFunc("/financeiro", financeiroHandler.Listar).Methods("GET")
	api.HandleFunc("/financeiro/{id}/pagamento", financeiroHandler.ConfirmarPagamento).Methods("PUT")
	api.HandleFunc("/financeiro/{id}", financeiroHandler.Deletar).Methods("DELETE")

	// Despesas do escritório
	api.HandleFunc("/despesas", despesaHandler.Criar).Methods("POST")
	api.HandleFunc("/despesas", despesaHandler.Listar).Methods("GET")
	api.HandleFunc("/despesas/{id}", despesaHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/despesas/{id}", despesaHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/despesas/{id}/pagamento", despesaHandler.ConfirmarPagamento).Methods("PUT")
	api.HandleFunc("/despesas/{id}/estorno", despesaHandler.Estornar).Methods("PUT")

	// Saldos
	api.HandleFunc("/saldos", saldoHandler.Criar).Methods("POST")
	api.HandleFunc("/saldos", saldoHandler.Listar).Methods("GET")
	api.HandleFunc("/saldos/grupos", saldoHandler.ListarGrupos).Methods("GET")

	// Recibos de comissão
	api.HandleFunc("/recibos", reciboHandler.Gerar).Methods("POST")
	api.HandleFunc("/recibos", reciboHandler.Listar).Methods("GET")
	api.HandleFunc("/recibos/{id}", reciboHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/recibos/{id}", reciboHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/recibos/{id}/assinatura", reciboHandler.Assinar).Methods("PUT")
	api.HandleFunc("/recibos/{id}/arquivo", reciboHandler.AnexarArquivo).Methods("PUT")

	// Relatórios
	api.HandleFunc("/relatorios/despesas", relatorioHandler.ListarDespesas).Methods("GET")
	api.HandleFunc("/relatorios/totais", relatorioHandler.ResumoTotais).Methods("GET")

	// Rotas administrativas
	admin := api.NewRoute().Subrouter()
	admin.Use(auth.RequireAdmin)
	admin.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")
	admin.HandleFunc("/usuarios/{id}/resetar-senha", usuarioHandler.ResetarSenha).Methods("POST")
	admin.HandleFunc("/usuarios/{id}", usuarioHandler.Deletar).Methods("DELETE")

	c := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: false,
	})

	porta := os.Getenv("PORT")
	if porta == "" {
		porta = "8080"
	}
	logg.WithField("porta", porta).Info("servidor iniciado")
	logg.Fatal(http.ListenAndServe(":"+porta, c.Handler(r)))
}

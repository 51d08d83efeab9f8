package main

import (
	"log"
	"net/http"
	"os"

	"github.com/gorilla/mux"
	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"gorm.io/gorm"

	"github.com/vitorhaoliveira/easy-buffet-api/internal/assinatura"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/auth"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/cliente"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/comissao"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/contrato"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/evento"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/pacote"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/pagamentoavulso"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/parcela"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/relatorio"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/usuario"
	"github.com/vitorhaoliveira/easy-buffet-api/internal/utils/db"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Arquivo .env não encontrado, usando variáveis do ambiente")
	}

	database, err := db.GetDB()
	if err != nil {
		log.Fatal("Erro ao conectar no banco:", err)
	}

	// AutoMigrate para todos os modelos
	migracoes := []func(*gorm.DB) error{
		usuario.Migrate,
		assinatura.Migrate,
		cliente.Migrate,
		pacote.Migrate,
		evento.Migrate,
		contrato.Migrate,
		parcela.Migrate,
		pagamentoavulso.Migrate,
		comissao.Migrate,
	}
	for _, migrate := range migracoes {
		if err := migrate(database); err != nil {
			log.Fatal("Erro no AutoMigrate:", err)
		}
	}

	// Handlers
	usuarioHandler := usuario.NewHandler(usuario.NewRepository(database))
	assinaturaRepo := assinatura.NewRepository(database)
	assinaturaHandler := assinatura.NewHandler(assinaturaRepo)
	clienteHandler := cliente.NewHandler(cliente.NewRepository(database))
	pacoteHandler := pacote.NewHandler(pacote.NewRepository(database))
	eventoHandler := evento.NewHandler(evento.NewRepository(database))
	contratoHandler := contrato.NewHandler(contrato.NewRepository(database))
	parcelaHandler := parcela.NewHandler(parcela.NewRepository(database))
	avulsoHandler := pagamentoavulso.NewHandler(pagamentoavulso.NewRepository(database))
	comissaoHandler := comissao.NewHandler(comissao.NewRepository(database))
	relatorioHandler := relatorio.NewHandler(relatorio.NewRepository(database))

	// Router
	r := mux.NewRouter()

	// Rotas públicas
	r.HandleFunc("/login", usuarioHandler.Login).Methods("POST")
	r.HandleFunc("/usuarios", usuarioHandler.Criar).Methods("POST")

	// Rotas autenticadas (conta do usuário, sem exigir assinatura ativa)
	conta := r.PathPrefix("/").Subrouter()
	conta.Use(auth.MiddlewareAutenticacao)
	conta.HandleFunc("/assinatura", assinaturaHandler.Buscar).Methods("GET")
	conta.HandleFunc("/assinatura", assinaturaHandler.Atualizar).Methods("PUT")
	conta.Handle("/usuarios", auth.RequireAdmin(http.HandlerFunc(usuarioHandler.Listar))).Methods("GET")
	conta.HandleFunc("/usuarios/{id}", usuarioHandler.BuscarPorID).Methods("GET")
	conta.HandleFunc("/usuarios/{id}", usuarioHandler.Atualizar).Methods("PUT")
	conta.Handle("/usuarios/{id}", auth.RequireAdmin(http.HandlerFunc(usuarioHandler.Deletar))).Methods("DELETE")
	conta.HandleFunc("/usuarios/{id}/redefinir-senha", usuarioHandler.RedefinirSenha).Methods("POST")

	// Rotas de operação: exigem autenticação e assinatura ativa
	api := r.PathPrefix("/").Subrouter()
	api.Use(auth.MiddlewareAutenticacao)
	api.Use(assinatura.RequireAssinaturaAtiva(assinaturaRepo))

	// Clientes
	api.HandleFunc("/clientes", clienteHandler.Criar).Methods("POST")
	api.HandleFunc("/clientes", clienteHandler.Listar).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/clientes/{id}", clienteHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/clientes/{id}", clienteHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/clientes/{id}/eventos", eventoHandler.ListarPorCliente).Methods("GET")
	api.HandleFunc("/clientes/{id}/contratos", contratoHandler.ListarPorCliente).Methods("GET")

	// Pacotes
	api.HandleFunc("/pacotes", pacoteHandler.Criar).Methods("POST")
	api.HandleFunc("/pacotes", pacoteHandler.Listar).Methods("GET")
	api.HandleFunc("/pacotes/{id}", pacoteHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/pacotes/{id}", pacoteHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/pacotes/{id}", pacoteHandler.Deletar).Methods("DELETE")

	// Eventos
	api.HandleFunc("/eventos", eventoHandler.Criar).Methods("POST")
	api.HandleFunc("/eventos", eventoHandler.Listar).Methods("GET")
	api.HandleFunc("/eventos/{id}", eventoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/eventos/{id}", eventoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/eventos/{id}", eventoHandler.Deletar).Methods("DELETE")

	// Contratos
	api.HandleFunc("/contratos", contratoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos", contratoHandler.Listar).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.BuscarPorID).Methods("GET")
	api.HandleFunc("/contratos/{id}", contratoHandler.Atualizar).Methods("PUT")
	api.HandleFunc("/contratos/{id}", contratoHandler.Deletar).Methods("DELETE")
	api.HandleFunc("/contratos/{id}/encerrar", contratoHandler.Encerrar).Methods("POST")

	// Parcelas
	api.HandleFunc("/contratos/{id}/parcelas", parcelaHandler.List).Methods("GET")
	api.HandleFunc("/parcelas/{pid}/pagamento", parcelaHandler.Pagar).Methods("POST")
	api.HandleFunc("/parcelas/{pid}", parcelaHandler.Atualizar).Methods("PUT")

	// Pagamentos avulsos
	api.HandleFunc("/contratos/{id}/pagamentos-avulsos", avulsoHandler.Criar).Methods("POST")
	api.HandleFunc("/contratos/{id}/pagamentos-avulsos", avulsoHandler.Listar).Methods("GET")
	api.HandleFunc("/pagamentos-avulsos/{id}", avulsoHandler.Remover).Methods("DELETE")

	// Comissão
	api.HandleFunc("/contratos/{id}/comissao", comissaoHandler.Buscar).Methods("GET")
	api.HandleFunc("/contratos/{id}/comissao", comissaoHandler.Definir).Methods("PUT")
	api.HandleFunc("/contratos/{id}/comissao", comissaoHandler.Remover).Methods("DELETE")
	api.HandleFunc("/contratos/{id}/comissao/pagar", comissaoHandler.Pagar).Methods("POST")
	api.HandleFunc("/contratos/{id}/comissao/estornar", comissaoHandler.Estornar).Methods("POST")

	// Relatórios
	api.HandleFunc("/relatorios/mensal", relatorioHandler.Mensal).Methods("GET")
	api.HandleFunc("/relatorios/anual", relatorioHandler.Anual).Methods("GET")

	handler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}).Handler(r)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Println("Servidor rodando em http://localhost:" + port)
	log.Fatal(http.ListenAndServe(":"+port, handler))
}

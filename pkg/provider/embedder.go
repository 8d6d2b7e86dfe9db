package provider

import (
	"context"

	"github.com/dtrlanz/markhor-sub000/pkg/embedding"
)

// UseCase hints at what an embedder's vectors are optimized for.
type UseCase string

const (
	UseCaseSimilarity         UseCase = "similarity"
	UseCaseRetrievalDocument  UseCase = "retrieval_document"
	UseCaseRetrievalQuery     UseCase = "retrieval_query"
	UseCaseClassification     UseCase = "classification"
	UseCaseClustering         UseCase = "clustering"
	UseCaseQuestionAnswering  UseCase = "question_answering"
	UseCaseFactVerification   UseCase = "fact_verification"
	UseCaseCodeRetrievalQuery UseCase = "code_retrieval_query"
	UseCaseGeneral            UseCase = "general"
	UseCaseOther              UseCase = "other"
)

// Embedder turns text into fixed-dimension vectors.
type Embedder interface {
	Identified

	Embed(ctx context.Context, texts []string) ([]embedding.Embedding, error)
	Dimensions() int
	ModelName() string
	IntendedUseCase() UseCase
	MaxBatchSizeHint() int
	MaxChunkLengthHint() int
}

package main

import (
	"log"
	"os"

	"github.com/parquet-go/parquet-go"
)

type Product struct {
	Code       string  `parquet:"code"`
	Name       string  `parquet:"product_name"`
	Brands     string  `parquet:"brands"`
	Nutriscore int32   `parquet:"nutriscore"`
	Score      float64 `parquet:"score"`
	Organic    bool    `parquet:"organic"`
}

func main() {
	products := []Product{
		{Code: "3017620422003", Name: "Hazelnut spread", Brands: "nutberry", Nutriscore: 22, Score: 2.1, Organic: false},
		{Code: "8000500310427", Name: "Dark chocolate", Brands: "cocoaworks", Nutriscore: 18, Score: 3.4, Organic: true},
		{Code: "5410188031250", Name: "Oat drink", Brands: "haverly", Nutriscore: 1, Score: 8.9, Organic: true},
		{Code: "7622210449283", Name: "Crackers", Brands: "bakehouse", Nutriscore: 9, Score: 5.6, Organic: false},
		{Code: "4056489231455", Name: "Tomato passata", Brands: "orchard", Nutriscore: -3, Score: 9.5, Organic: true},
		{Code: "3228857000852", Name: "Sandwich bread", Brands: "bakehouse", Nutriscore: 4, Score: 6.2, Organic: false},
		{Code: "8714100770316", Name: "Peanut butter", Brands: "nutberry", Nutriscore: 12, Score: 4.8, Organic: false},
	}

	file, err := os.Create("products.parquet")
	if err != nil {
		log.Fatal(err)
	}
	defer file.Close()

	writer := parquet.NewGenericWriter[Product](file)
	defer writer.Close()

	if _, err := writer.Write(products); err != nil {
		log.Fatal(err)
	}

	log.Printf("Generated products.parquet with %d products", len(products))
}

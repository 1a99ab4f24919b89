package rustenberg_test

import (
	"context"
	"io"
	"log"
	"os"
	"time"

	"github.com/GriffinCanCode/rustenberg"
)

func ExampleClient_Conversions() {
	client, err := rustenberg.NewClient(rustenberg.Options{
		ServiceURL: "http://localhost:8000",
		Timeout:    time.Minute,
	})
	if err != nil {
		log.Fatal(err)
	}

	pdf, err := client.Conversions().ConvertURL(context.Background(), &rustenberg.ConvertURLRequest{
		URL: "https://example.com",
		PDFOptions: rustenberg.PDFOptions{
			Landscape:       rustenberg.Ptr(true),
			PrintBackground: rustenberg.Ptr(true),
		},
	})
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile("example.pdf", pdf, 0o644); err != nil {
		log.Fatal(err)
	}
}

func ExampleManipulationService_StreamMerge() {
	client, err := rustenberg.NewClient(rustenberg.Options{ServiceURL: "http://localhost:8000"})
	if err != nil {
		log.Fatal(err)
	}

	chapters, err := rustenberg.NewFilesFromGlob("book/chapters/*.pdf")
	if err != nil {
		log.Fatal(err)
	}

	body, err := client.Manipulations().StreamMerge(context.Background(), &rustenberg.MergeRequest{
		Documents: chapters,
	})
	if err != nil {
		log.Fatal(err)
	}
	defer body.Close()

	out, err := os.Create("book.pdf")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()

	if _, err := io.Copy(out, body); err != nil {
		log.Fatal(err)
	}
}

// Package seed 提供启动时一次性载入的初始数据集
package seed

import "lawdesk/internal/domain"

func Cases() []domain.Case {
	return []domain.Case{
		{
			ID:          "CASE-2024-001",
			Title:       "PT. Abadi Jaya vs PT. Mitra Sejahtera",
			Type:        "Perdata",
			Status:      domain.CaseActive,
			Priority:    domain.PriorityHigh,
			Client:      "PT. Abadi Jaya",
			ClientID:    1,
			AssignedTo:  []string{"Dr. Ahmad Fauzi, S.H., M.H.", "Sarah Wijaya, S.H."},
			CreatedAt:   "2024-01-15",
			Deadline:    "2024-03-20",
			Description: "Sengketa kontrak kerjasama bisnis senilai Rp 5.2 Miliar",
			Progress:    65,
			Value:       5200000000,
			Documents:   12,
			Notes:       8,
		},
		{
			ID:          "CASE-2024-002",
			Title:       "Budi Hartono - Perceraian",
			Type:        "Keluarga",
			Status:      domain.CaseActive,
			Priority:    domain.PriorityMedium,
			Client:      "Budi Hartono",
			ClientID:    2,
			AssignedTo:  []string{"Sarah Wijaya, S.H."},
			CreatedAt:   "2024-01-20",
			Deadline:    "2024-04-15",
			Description: "Pengurusan perceraian dan pembagian harta gono-gini",
			Progress:    40,
			Value:       150000000,
			Documents:   6,
			Notes:       4,
		},
		{
			ID:          "CASE-2024-003",
			Title:       "PT. Global Tech - Akuisisi",
			Type:        "Korporasi",
			Status:      domain.CasePending,
			Priority:    domain.PriorityHigh,
			Client:      "PT. Global Tech",
			ClientID:    3,
			AssignedTo:  []string{"Dr. Ahmad Fauzi, S.H., M.H."},
			CreatedAt:   "2024-02-01",
			Deadline:    "2024-06-30",
			Description: "Due diligence dan dokumentasi hukum akuisisi perusahaan",
			Progress:    20,
			Value:       8500000000,
			Documents:   25,
			Notes:       10,
		},
		{
			ID:          "CASE-2024-004",
			Title:       "CV. Karya Mandiri - Sengketa Tanah",
			Type:        "Properti",
			Status:      domain.CaseActive,
			Priority:    domain.PriorityLow,
			Client:      "CV. Karya Mandiri",
			ClientID:    4,
			AssignedTo:  []string{"Sarah Wijaya, S.H."},
			CreatedAt:   "2024-02-10",
			Deadline:    "2024-05-20",
			Description: "Sengketa kepemilikan tanah seluas 2 hektar di Bogor",
			Progress:    55,
			Value:       3200000000,
			Documents:   18,
			Notes:       7,
		},
		{
			ID:          "CASE-2024-005",
			Title:       "Rina Susanti - Kecelakaan Kerja",
			Type:        "Ketenagakerjaan",
			Status:      domain.CaseClosed,
			Priority:    domain.PriorityMedium,
			Client:      "Rina Susanti",
			ClientID:    5,
			AssignedTo:  []string{"Sarah Wijaya, S.H."},
			CreatedAt:   "2023-11-05",
			Deadline:    "2024-01-30",
			Description: "Klaim kompensasi kecelakaan kerja terhadap PT. Industri Jaya",
			Progress:    100,
			Value:       250000000,
			Documents:   9,
			Notes:       5,
		},
	}
}

func Clients() []domain.Client {
	return []domain.Client{
		{
			ID: 1, Name: "PT. Abadi Jaya", Type: domain.ClientCorporate,
			Email: "legal@abadijaya.co.id", Phone: "+62 21 555 1234",
			Address:       "Jl. Sudirman No. 100, Jakarta Selatan",
			ContactPerson: "Hendra Wijaya",
			ActiveCases:   1, TotalCases: 3, TotalBilled: 850000000,
			Status: "active", JoinedAt: "2022-05-15",
		},
		{
			ID: 2, Name: "Budi Hartono", Type: domain.ClientIndividual,
			Email: "budi.hartono@email.com", Phone: "+62 812 3456 7890",
			Address:     "Jl. Kemang Raya No. 45, Jakarta Selatan",
			ActiveCases: 1, TotalCases: 1, TotalBilled: 75000000,
			Status: "active", JoinedAt: "2024-01-20",
		},
		{
			ID: 3, Name: "PT. Global Tech", Type: domain.ClientCorporate,
			Email: "corporate@globaltech.id", Phone: "+62 21 777 8888",
			Address:       "Gedung Cyber Tower, Jl. HR Rasuna Said, Jakarta",
			ContactPerson: "Diana Kusuma",
			ActiveCases:   1, TotalCases: 5, TotalBilled: 2500000000,
			Status: "active", JoinedAt: "2021-08-10",
		},
		{
			ID: 4, Name: "CV. Karya Mandiri", Type: domain.ClientCorporate,
			Email: "info@karyamandiri.com", Phone: "+62 251 555 6789",
			Address:       "Jl. Pahlawan No. 88, Bogor",
			ContactPerson: "Agus Pratama",
			ActiveCases:   1, TotalCases: 2, TotalBilled: 180000000,
			Status: "active", JoinedAt: "2023-06-22",
		},
		{
			ID: 5, Name: "Rina Susanti", Type: domain.ClientIndividual,
			Email: "rina.s@email.com", Phone: "+62 878 9012 3456",
			Address:     "Jl. Margonda Raya No. 200, Depok",
			ActiveCases: 0, TotalCases: 1, TotalBilled: 50000000,
			Status: "inactive", JoinedAt: "2023-11-05",
		},
	}
}

func Invoices() []domain.Invoice {
	return []domain.Invoice{
		{
			ID: "INV-2024-001", CaseID: "CASE-2024-001",
			Client: "PT. Abadi Jaya", ClientID: 1,
			Amount: 250000000, Status: domain.InvoicePaid,
			IssuedAt: "2024-01-20", DueDate: "2024-02-20", PaidAt: "2024-02-15",
			Items: []domain.InvoiceItem{
				{Description: "Konsultasi Awal", Hours: 4, Rate: 5000000, Amount: 20000000},
				{Description: "Drafting Dokumen", Hours: 20, Rate: 3500000, Amount: 70000000},
				{Description: "Representasi Pengadilan", Hours: 16, Rate: 10000000, Amount: 160000000},
			},
		},
		{
			ID: "INV-2024-002", CaseID: "CASE-2024-002",
			Client: "Budi Hartono", ClientID: 2,
			Amount: 75000000, Status: domain.InvoicePending,
			IssuedAt: "2024-02-01", DueDate: "2024-03-01",
			Items: []domain.InvoiceItem{
				{Description: "Konsultasi", Hours: 3, Rate: 5000000, Amount: 15000000},
				{Description: "Persiapan Dokumen", Hours: 12, Rate: 3000000, Amount: 36000000},
				{Description: "Mediasi", Hours: 6, Rate: 4000000, Amount: 24000000},
			},
		},
		{
			ID: "INV-2024-003", CaseID: "CASE-2024-003",
			Client: "PT. Global Tech", ClientID: 3,
			Amount: 500000000, Status: domain.InvoiceOverdue,
			IssuedAt: "2024-01-15", DueDate: "2024-02-15",
			Items: []domain.InvoiceItem{
				{Description: "Due Diligence", Hours: 80, Rate: 5000000, Amount: 400000000},
				{Description: "Legal Opinion", Hours: 20, Rate: 5000000, Amount: 100000000},
			},
		},
		{
			ID: "INV-2024-004", CaseID: "CASE-2024-004",
			Client: "CV. Karya Mandiri", ClientID: 4,
			Amount: 120000000, Status: domain.InvoiceDraft,
			Items: []domain.InvoiceItem{
				{Description: "Survey Lokasi", Hours: 8, Rate: 5000000, Amount: 40000000},
				{Description: "Penelitian Dokumen", Hours: 16, Rate: 3000000, Amount: 48000000},
				{Description: "Negosiasi", Hours: 8, Rate: 4000000, Amount: 32000000},
			},
		},
	}
}
